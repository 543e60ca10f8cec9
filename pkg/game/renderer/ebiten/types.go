package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "castlequest/pkg/engine/input"
	"castlequest/pkg/game/castle"
	"castlequest/pkg/game/quest"
	"castlequest/pkg/game/state"
)

// renderSnapshot holds a consistent copy of game state for Draw.
// The game loop runs on its own goroutine, so Draw never reads state.Game.
type renderSnapshot struct {
	valid      bool
	location   string
	quests     []quest.Quest
	scoreboard string
	nearby     []string
	messages   []string
	minimap    castle.Minimap
	talking    bool
}

// notice is a modal notification waiting to be dismissed
type notice struct {
	text string
	done chan struct{}
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Font source and cached face for UI text
	sansFontSource *text.GoTextFaceSource
	cachedSansFace *text.GoTextFace

	// Last game seen by RenderFrame; only touched from the game loop goroutine
	game *state.Game

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Modal notification, if one is showing
	notice      *notice
	noticeMutex sync.Mutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// closed is closed when the window goes away, releasing a blocked game loop
	closed    chan struct{}
	closeOnce sync.Once

	// finished is set when the game loop returns
	finished      bool
	finishedMutex sync.RWMutex

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
