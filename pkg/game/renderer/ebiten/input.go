package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "castlequest/pkg/engine/input"
)

// keyCodes maps Ebiten keys to the raw codes understood by the input bindings.
// WASD doubles as the arrow keys.
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyW, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyS, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyA, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyD, "arrow_right"},
	{ebiten.KeyT, "t"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeySlash, "?"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeySpace, "space"},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.finishedMutex.RLock()
	finished := e.finished
	e.finishedMutex.RUnlock()
	if finished {
		return ebiten.Termination
	}

	// A modal notification swallows all input until dismissed
	e.noticeMutex.Lock()
	n := e.notice
	if n != nil && e.dismissPressed() {
		e.notice = nil
		close(n.done)
	}
	e.noticeMutex.Unlock()
	if n != nil {
		return nil
	}

	if code := e.pressedCode(); code != "" {
		intent := engineinput.IntentFromCode(engineinput.DeviceKeyboard, code)
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}
	return nil
}

// dismissPressed reports whether a notification dismiss key was just pressed
func (e *EbitenRenderer) dismissPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// pressedCode returns the code of the first bound key pressed this frame
func (e *EbitenRenderer) pressedCode() string {
	for _, kc := range keyCodes {
		if inpututil.IsKeyJustPressed(kc.key) {
			return kc.code
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return "click"
	}
	return ""
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
