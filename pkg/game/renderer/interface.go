package renderer

import (
	"castlequest/pkg/engine/input"
	"castlequest/pkg/game/quest"
	"castlequest/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleLandmark
	StyleItem
	StyleAction
	StyleActionShort
	StyleQuest
	StyleQuestDone
	StyleDenied
	StyleSubtle
	StylePlayer
	StyleSpeaker
)

// Renderer defines the interface for game rendering backends
// Implementations are the terminal (TUI) and Ebiten window renderers.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: location, quests,
	// scoreboard, minimap and messages
	RenderFrame(g *state.Game)

	// GetInput blocks until the player produces an intent
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it may return markup
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a notification and blocks until the player dismisses it
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// GetInput gets user input from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionQuit}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}

// ShowMessage shows a blocking notification using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 15, 30 // sensible defaults
}

// Notifier returns a quest notifier that shows completions through whichever
// renderer is current when the quest completes
func Notifier() quest.Notifier {
	return quest.NotifierFunc(ShowMessage)
}
