package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "cavearena/pkg/engine/input"
)

// keyCodes maps Ebiten keys to the shared binding codes so the keyboard
// goes through the same raw/debounced/intent layers as the terminal.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyK:          "k",
	ebiten.KeyJ:          "j",
	ebiten.KeyH:          "h",
	ebiten.KeyL:          "l",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyR:          "r",
	ebiten.KeyF5:         "f5",
	ebiten.KeyF9:         "f9",
}

// checkInput returns the intent for a key pressed this tick, if any.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			raw := engineinput.NewRawInput(engineinput.DeviceKeyboard, code)
			return engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		}
	}
	return engineinput.Intent{}
}

// handleZoom adjusts the tile size with =/- keys.
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		if e.tileSize < maxTileSize {
			e.tileSize += 2
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		if e.tileSize > minTileSize {
			e.tileSize -= 2
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		e.tileSize = defaultTileSize
	}
}
