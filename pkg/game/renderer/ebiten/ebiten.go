package ebiten

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	engineinput "castlequest/pkg/engine/input"
	"castlequest/pkg/game/castle"
	"castlequest/pkg/game/renderer"
	"castlequest/pkg/game/state"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		inputChan:    make(chan engineinput.Intent, inputBufferSize),
		closed:       make(chan struct{}),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("Cannot load UI font: %v", err)
	}
	e.sansFontSource = src

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Castle Quest")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op; Draw repaints the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until Update delivers an intent or the window closes
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.closed:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// StyleText returns the text unchanged; Draw colors markup segments itself
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message, leaving markup for Draw to color
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// ShowMessage opens a modal notification and blocks the calling game loop
// until the player dismisses it or the window closes
func (e *EbitenRenderer) ShowMessage(msg string) {
	// Refresh so the notification sits over up-to-date quest marks
	if e.game != nil {
		e.RenderFrame(e.game)
	}

	n := &notice{text: msg, done: make(chan struct{})}
	e.noticeMutex.Lock()
	e.notice = n
	e.noticeMutex.Unlock()

	select {
	case <-n.done:
	case <-e.closed:
	}
}

// GetViewportSize returns the window size in pixels (height, width)
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	w, h := ebiten.WindowSize()
	return h, w
}

// RenderFrame stores the game and captures a snapshot for the next Draw call
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.game = g
	snap := snapshotOf(g)

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}

// snapshotOf copies everything Draw needs out of the game state
func snapshotOf(g *state.Game) renderSnapshot {
	if g == nil || g.Grounds == nil || g.Quests == nil {
		return renderSnapshot{}
	}

	snap := renderSnapshot{
		valid:    true,
		quests:   g.Quests.Log().Quests(),
		messages: g.MessageTexts(),
		minimap:  castle.MinimapLayout(g.Grounds, castle.MinimapSize),
	}
	if l, ok := g.Grounds.CurrentLandmark(); ok {
		snap.location = l.Name
	}
	for _, l := range g.Grounds.Nearby() {
		if l.Name != snap.location {
			snap.nearby = append(snap.nearby, l.Name)
		}
	}
	if g.Balloons != nil {
		snap.scoreboard = g.Balloons.Scoreboard()
	}
	if g.Dialogue != nil {
		_, snap.talking = g.Dialogue.Active()
	}
	return snap
}

// Run starts the game loop on its own goroutine and runs Ebiten on the
// calling goroutine, which must be the main one. It returns when the
// window closes or the game loop ends.
func (e *EbitenRenderer) Run(gameLoop func()) error {
	go func() {
		gameLoop()
		e.finishedMutex.Lock()
		e.finished = true
		e.finishedMutex.Unlock()
	}()

	err := ebiten.RunGame(e)
	e.closeOnce.Do(func() { close(e.closed) })
	return err
}
