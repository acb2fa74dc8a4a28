// Package menu provides main menu implementation using the generic menu system.
package menu

import "github.com/leonelquinteros/gotext"

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionDescend MainMenuAction = iota
	MainMenuActionHelp
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label  string
	Action MainMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionDescend:
		return gotext.Get("Climb down into the first cavern")
	case MainMenuActionHelp:
		return gotext.Get("How to play")
	case MainMenuActionQuit:
		return gotext.Get("Exit the game")
	default:
		return ""
	}
}

// mainMenuHandler records the activated item.
type mainMenuHandler struct {
	chosen MainMenuAction
}

func (h *mainMenuHandler) GetTitle() string {
	return "Cave Arena"
}

func (h *mainMenuHandler) OnActivate(item MenuItem, index int) bool {
	if mainItem, ok := item.(*MainMenuItem); ok {
		h.chosen = mainItem.Action
		return true
	}
	return false
}

// ShowMainMenu runs the main menu and returns the chosen action. Backing out
// with quit maps to MainMenuActionQuit.
func ShowMainMenu() MainMenuAction {
	items := []MenuItem{
		&MainMenuItem{Label: gotext.Get("Descend"), Action: MainMenuActionDescend},
		&MainMenuItem{Label: gotext.Get("Help"), Action: MainMenuActionHelp},
		&MainMenuItem{Label: gotext.Get("Quit"), Action: MainMenuActionQuit},
	}
	handler := &mainMenuHandler{chosen: MainMenuActionQuit}
	Run(items, handler)
	return handler.chosen
}
