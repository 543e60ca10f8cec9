// Package gameplay provides core game logic: building a session, dispatching
// player intents and running the main loop.
package gameplay

import (
	"log"
	"math/rand"
	"time"

	"castlequest/pkg/game/castle"
	"castlequest/pkg/game/dialogue"
	"castlequest/pkg/game/minigame"
	"castlequest/pkg/game/quest"
	"castlequest/pkg/game/renderer"
	"castlequest/pkg/game/state"
)

// Config holds the settings for a new session
type Config struct {
	// Seed for the balloon field; 0 means time-based
	Seed int64

	// Quests overrides the default quest log
	Quests *quest.Log
}

// BuildGame creates a new session and wires quest triggers from the
// dialogue and minigame into the tracker
func BuildGame(cfg Config, logger *log.Logger, notifier quest.Notifier) *state.Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	questLog := cfg.Quests
	if questLog == nil {
		questLog = quest.DefaultLog()
	}

	tracker := quest.NewTracker(questLog, logger, notifier)
	talk := dialogue.NewManager(dialogue.DefaultCharacters()...)
	balloons := minigame.NewBalloons(rand.New(rand.NewSource(seed)), quest.PopBalloons)

	talk.OnFinished = func(questID string) { tracker.Trigger(questID) }
	balloons.OnTarget = func(questID string) { tracker.Trigger(questID) }

	g := state.NewGame(tracker, castle.DefaultGrounds(), talk, balloons)

	logMessage(g, "Welcome to the castle!")
	logMessage(g, "Press ACTION{?} for help.")
	return g
}

// Run is the main loop: render, read an intent, apply it, until the player quits
func Run(g *state.Game) {
	for !g.Quit {
		renderer.RenderFrame(g)
		ProcessIntent(g, renderer.GetInput())
	}
	renderer.RenderFrame(g)
}
