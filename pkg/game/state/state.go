package state

import (
	"time"

	"castlequest/pkg/game/castle"
	"castlequest/pkg/game/dialogue"
	"castlequest/pkg/game/minigame"
	"castlequest/pkg/game/quest"
)

const maxMessages = 5

// Message is an entry in the in-game message log
type Message struct {
	Text      string
	Timestamp time.Time
}

// Game represents the state of one play session
type Game struct {
	Quests   *quest.Tracker
	Grounds  *castle.Grounds
	Dialogue *dialogue.Manager
	Balloons *minigame.Balloons

	Messages []Message

	MovementCount int

	Quit bool
}

// NewGame creates a new game session from its collaborators
func NewGame(tracker *quest.Tracker, grounds *castle.Grounds, talk *dialogue.Manager, balloons *minigame.Balloons) *Game {
	return &Game{
		Quests:   tracker,
		Grounds:  grounds,
		Dialogue: talk,
		Balloons: balloons,
		Messages: make([]Message, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, Message{Text: msg, Timestamp: time.Now()})

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]Message, 0)
}

// MessageTexts returns the message log text, oldest first
func (g *Game) MessageTexts() []string {
	out := make([]string, len(g.Messages))
	for i, m := range g.Messages {
		out[i] = m.Text
	}
	return out
}
