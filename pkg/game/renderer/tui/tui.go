// Package tui renders the arena to an ANSI terminal.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"cavearena/pkg/engine/input"
	"cavearena/pkg/engine/terminal"
	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/renderer"
	"cavearena/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	// Lines needed outside viewport:
	// - Level indicator + blank (2)
	// - Status bar (2)
	// - Actions (1)
	// - Messages pane (header + 5 messages + footer = 7)
	// - Input prompt (2)
	ViewportTopMargin  = 14
	ViewportSideMargin = 4
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall        color.Style
	colorFloor       color.Style
	colorExit        color.Style
	colorPlayer      color.Style
	colorEnemy       color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorHealth      color.Style
	colorSubtle      color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgGray, color.OpBold}
	t.colorExit = color.Style{color.FgGreen}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorHealth = color.Style{color.FgGreen}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput reads one keypress and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	raw := input.ReadKey()
	debounced := input.NewDebouncedInput(raw)
	return input.MapToIntent(debounced)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleHealth:
		return t.colorHealth.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ENEMY":
			val = t.colorEnemy.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - (ViewportSideMargin * 2)
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	// Keep dimensions odd so the player sits on the exact center cell.
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}

	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	// Level indicator in top left
	t.colorAction.Printf("%s %d\n\n", gotext.Get("Cavern"), g.Level)

	t.printArena(g)
	t.printStatusBar(g)
	t.printPossibleActions()
	t.printMessagesPane(g)

	fmt.Printf("\n> ")
}

// printArena renders the grid window centered on the player
func (t *TUIRenderer) printArena(g *state.Game) {
	if g.Grid == nil {
		return
	}

	rows, cols := t.GetViewportSize()
	dim := g.Grid.Dim()
	pp := g.Player.Pos()
	view := terminal.CenterViewport(dim, dim, cols, rows, pp.X, pp.Y)

	for y := view.Y; y < view.Y+view.Height; y++ {
		fmt.Print(strings.Repeat(" ", ViewportSideMargin))
		for x := view.X; x < view.X+view.Width; x++ {
			p := world.Position{X: x, Y: y}
			glyph := renderer.Glyph(g, p)
			fmt.Print(t.StyleText(glyph, renderer.GlyphStyle(g, p)))
		}
		fmt.Println()
	}
	fmt.Println()
}

// printStatusBar renders player health and the enemy count
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	hp := fmt.Sprintf("%s %d/%d", gotext.Get("HP"), g.Player.HP(), g.Player.MaxHP())
	if g.Player.HP() <= g.Player.MaxHP()/4 {
		hp = t.colorDenied.Sprint(hp)
	} else {
		hp = t.colorHealth.Sprint(hp)
	}

	enemies := fmt.Sprintf("%s %d", gotext.Get("Enemies"), len(g.Enemies))

	status := hp + "  " + enemies
	if effects := g.Player.Effects(); len(effects) > 0 {
		status += "  " + t.colorSubtle.Sprint(strings.Join(effects, ", "))
	}
	fmt.Println(status)
	fmt.Println()
}

// printPossibleActions renders the action hint line
func (t *TUIRenderer) printPossibleActions() {
	t.printString("GT{Move}: ↑↓←→/hjkl  ACTION{regen}  ACTION{quit}\n")
}

// printMessagesPane renders the recent message log
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	fmt.Println(t.colorSubtle.Sprint("────────────"))
	for _, msg := range g.Messages {
		fmt.Println(t.FormatText("%s", msg))
	}
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Print(t.FormatText(msg, a...))
}
