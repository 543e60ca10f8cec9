// Package dialogue runs conversations with the castle's characters.
// Finishing a conversation with a quest-giving character reports the quest id.
package dialogue

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"castlequest/pkg/game/quest"
)

var (
	// ErrUnknownCharacter is returned when starting a conversation with nobody
	ErrUnknownCharacter = errors.New("unknown character")
	// ErrBusy is returned when a conversation is already in progress
	ErrBusy = errors.New("conversation already in progress")
)

// Character is someone the player can talk to
type Character struct {
	ID      string
	Name    string
	Lines   []string
	QuestID string // quest completed by finishing the conversation, if any
}

// Line is one step of a conversation
type Line struct {
	Speaker  string
	Text     string
	Finished bool   // true on the last line; the conversation has ended
	QuestID  string // set on the last line of a quest-giving conversation
}

// Manager holds the cast and the active conversation
type Manager struct {
	characters map[string]Character
	order      []string

	active   string
	position int
	spokenTo mapset.Set[string]

	// OnFinished is called with the character's quest id each time the
	// last line of a quest-giving conversation has been shown
	OnFinished func(questID string)
}

// NewManager creates a manager for the given characters.
// Later characters with a repeated id replace earlier ones.
func NewManager(characters ...Character) *Manager {
	m := &Manager{
		characters: make(map[string]Character, len(characters)),
		spokenTo:   mapset.New[string](),
	}
	for _, c := range characters {
		if _, exists := m.characters[c.ID]; !exists {
			m.order = append(m.order, c.ID)
		}
		m.characters[c.ID] = c
	}
	return m
}

// DefaultCharacters returns the castle's cast
func DefaultCharacters() []Character {
	return []Character{
		{
			ID:   "knight",
			Name: "Sir Aldric",
			Lines: []string{
				"Halt, traveller! Few come up the mountain road these days.",
				"The castle has stood for three hundred winters. I have guarded it for thirty.",
				"Enjoy the fair, and mind the jester's balloons.",
			},
			QuestID: quest.TalkKnight,
		},
		{
			ID:   "jester",
			Name: "Pip the Jester",
			Lines: []string{
				"Step right up! Pop the balloons before they drift over the walls!",
				"Five pops and you'll be the talk of the keep.",
			},
		},
	}
}

// Characters returns the cast in declaration order
func (m *Manager) Characters() []Character {
	out := make([]Character, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.characters[id])
	}
	return out
}

// Start begins a conversation with the given character
func (m *Manager) Start(id string) error {
	if m.active != "" {
		return fmt.Errorf("%w with %s", ErrBusy, m.characters[m.active].Name)
	}
	c, ok := m.characters[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
	}
	if len(c.Lines) == 0 {
		m.spokenTo.Put(id)
		m.finish(c.QuestID)
		return nil
	}
	m.active = id
	m.position = 0
	return nil
}

// Active returns the character in conversation, if any
func (m *Manager) Active() (Character, bool) {
	if m.active == "" {
		return Character{}, false
	}
	return m.characters[m.active], true
}

// Advance returns the next line of the active conversation.
// Returns false when no conversation is active. The last line ends the
// conversation; pass it to Shown once it is on screen.
func (m *Manager) Advance() (Line, bool) {
	if m.active == "" {
		return Line{}, false
	}
	c := m.characters[m.active]

	line := Line{Speaker: c.Name, Text: c.Lines[m.position]}
	m.position++

	if m.position >= len(c.Lines) {
		line.Finished = true
		m.active = ""
		m.position = 0
		line.QuestID = c.QuestID
		m.spokenTo.Put(c.ID)
	}
	return line, true
}

// Shown reports that a line returned by Advance is on screen.
// The last line of a quest-giving conversation fires OnFinished.
func (m *Manager) Shown(line Line) {
	if line.Finished {
		m.finish(line.QuestID)
	}
}

// HasSpokenTo reports whether a conversation with the character was finished
func (m *Manager) HasSpokenTo(id string) bool {
	return m.spokenTo.Has(id)
}

func (m *Manager) finish(questID string) {
	if questID != "" && m.OnFinished != nil {
		m.OnFinished(questID)
	}
}
