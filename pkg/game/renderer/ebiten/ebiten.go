package ebiten

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "cavearena/pkg/engine/input"
	"cavearena/pkg/game/renderer"
	"cavearena/pkg/game/state"
)

// EbitenRenderer draws the arena in a window. The game logic runs on its own
// goroutine and blocks in GetInput; the Ebiten loop delivers intents through
// inputChan and draws the last frame snapshot.
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int
	tileSize     int

	inputChan chan engineinput.Intent

	mu   sync.RWMutex
	game *state.Game
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		tileSize:     defaultTileSize,
		inputChan:    make(chan engineinput.Intent, 8),
	}
}

// Init sets up the window.
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Cave Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op; Ebiten clears the screen each Draw.
func (e *EbitenRenderer) Clear() {}

// RenderFrame publishes the game state for the next Draw.
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.mu.Lock()
	e.game = g
	e.mu.Unlock()
}

// GetInput blocks until the Ebiten loop delivers an intent.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	return <-e.inputChan
}

// StyleText returns the text unchanged; styling is done at draw time.
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// regexpMarkup matches the TUI's style markup so windowed messages show the
// bare operand instead of raw tags.
var regexpMarkup = regexp.MustCompile(`[a-zA-Z_]*{([a-z A-Z0-9_,:]+)}`)

// FormatText formats a message, flattening any style markup.
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return regexpMarkup.ReplaceAllString(fmt.Sprintf(msg, args...), "$1")
}

// ShowMessage is satisfied by the message pane drawn each frame.
func (e *EbitenRenderer) ShowMessage(msg string) {}

// GetViewportSize reports how many tiles fit in the window.
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	return e.windowHeight / e.tileSize, e.windowWidth / e.tileSize
}

// Update polls the keyboard and forwards intents (Ebiten interface).
func (e *EbitenRenderer) Update() error {
	e.handleZoom()

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		// Non-blocking send; drop input if the game is mid-turn.
		select {
		case e.inputChan <- intent:
		default:
		}
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface).
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// Run starts the Ebiten game loop and blocks until the window closes.
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}
