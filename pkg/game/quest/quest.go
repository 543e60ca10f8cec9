// Package quest tracks player progression through a fixed, ordered log of quests.
// A quest is either pending or completed; completion is one-way.
package quest

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrEmptyID is returned when a quest is declared without an identifier
	ErrEmptyID = errors.New("quest id is empty")
	// ErrDuplicateID is returned when two quests share an identifier
	ErrDuplicateID = errors.New("duplicate quest id")
)

// Quest IDs used by the default log
const (
	TalkKnight  = "talk-knight"
	PopBalloons = "pop-balloons"
)

// Quest is a named unit of player progression
type Quest struct {
	ID          string
	Description string
	Completed   bool
}

// Completion is emitted when a pending quest becomes completed
type Completion struct {
	ID          string
	Description string
}

// LogLine returns the operator-facing log text for the completion
func (c Completion) LogLine() string {
	return fmt.Sprintf("Quest completed: %s", c.Description)
}

// NotificationText returns the player-facing notification text.
// The English msgid is also the untranslated default.
func (c Completion) NotificationText() string {
	return gotext.Get("Quest Completed: %s", c.Description)
}

// Log is the ordered collection of all quests for a session.
// Entries are fixed at construction; only completion flags change.
type Log struct {
	quests []Quest
}

// NewLog creates a log from the given quests, preserving their order
func NewLog(quests ...Quest) (*Log, error) {
	seen := mapset.New[string]()
	entries := make([]Quest, 0, len(quests))

	for i, q := range quests {
		if q.ID == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyID)
		}
		if seen.Has(q.ID) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, q.ID)
		}
		seen.Put(q.ID)
		entries = append(entries, q)
	}

	return &Log{quests: entries}, nil
}

// DefaultLog returns the quests available at the start of a session
func DefaultLog() *Log {
	return &Log{quests: []Quest{
		{ID: TalkKnight, Description: "Speak to the castle knight"},
		{ID: PopBalloons, Description: "Pop 5 balloons"},
	}}
}

// Len returns the number of quests in the log
func (l *Log) Len() int {
	return len(l.quests)
}

// Quests returns a copy of the log in display order
func (l *Log) Quests() []Quest {
	out := make([]Quest, len(l.quests))
	copy(out, l.quests)
	return out
}

// Get returns the first quest with the given id
func (l *Log) Get(id string) (Quest, bool) {
	if i := l.index(id); i >= 0 {
		return l.quests[i], true
	}
	return Quest{}, false
}

// Pending returns the quests not yet completed, in display order
func (l *Log) Pending() []Quest {
	var pending []Quest
	for _, q := range l.quests {
		if !q.Completed {
			pending = append(pending, q)
		}
	}
	return pending
}

// CompletedCount returns how many quests have been completed
func (l *Log) CompletedCount() int {
	n := 0
	for _, q := range l.quests {
		if q.Completed {
			n++
		}
	}
	return n
}

// Complete marks the quest with the given id as completed.
// It returns false without touching the log when the id is unknown
// or the quest was already completed.
func (l *Log) Complete(id string) (Completion, bool) {
	i := l.index(id)
	if i < 0 || l.quests[i].Completed {
		return Completion{}, false
	}

	l.quests[i].Completed = true
	return Completion{ID: l.quests[i].ID, Description: l.quests[i].Description}, true
}

func (l *Log) index(id string) int {
	for i := range l.quests {
		if l.quests[i].ID == id {
			return i
		}
	}
	return -1
}
