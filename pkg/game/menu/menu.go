// Package menu provides a generic menu system for the game.
package menu

import (
	"fmt"

	engineinput "cavearena/pkg/engine/input"
	"cavearena/pkg/game/renderer"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item activation.
type MenuHandler interface {
	// OnActivate is called when an item is activated (Enter pressed).
	// Returns true if the menu should close.
	OnActivate(item MenuItem, index int) bool
	// GetTitle returns the menu title.
	GetTitle() string
}

// Run runs a generic menu with the given items and handler. It returns when
// the handler closes the menu or the player backs out with quit.
func Run(items []MenuItem, handler MenuHandler) {
	selected := firstSelectable(items, 0, +1)

	for {
		render(items, selected, handler.GetTitle())

		intent := renderer.GetInput()
		switch intent.Action {
		case engineinput.ActionMoveNorth:
			selected = firstSelectable(items, selected-1, -1)
		case engineinput.ActionMoveSouth:
			selected = firstSelectable(items, selected+1, +1)
		case engineinput.ActionConfirm:
			if handler.OnActivate(items[selected], selected) {
				return
			}
		case engineinput.ActionQuit:
			return
		}
	}
}

// firstSelectable walks from start in the given step direction and returns
// the index of the first selectable item, wrapping around the ends.
func firstSelectable(items []MenuItem, start, step int) int {
	n := len(items)
	for i := 0; i < n; i++ {
		idx := ((start+i*step)%n + n) % n
		if items[idx].IsSelectable() {
			return idx
		}
	}
	return 0
}

// render draws the menu through the active renderer.
func render(items []MenuItem, selected int, title string) {
	renderer.Clear()
	renderer.ShowMessage(renderer.StyleText(title, renderer.StyleActionShort))
	renderer.ShowMessage("")
	for i, item := range items {
		label := item.GetLabel()
		if i == selected {
			renderer.ShowMessage(renderer.StyleText("> "+label, renderer.StyleAction))
		} else {
			renderer.ShowMessage(fmt.Sprintf("  %s", label))
		}
	}
	renderer.ShowMessage("")
	if help := items[selected].GetHelpText(); help != "" {
		renderer.ShowMessage(renderer.StyleText(help, renderer.StyleSubtle))
	}
}
