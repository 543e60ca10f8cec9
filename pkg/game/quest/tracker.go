package quest

import (
	"io"
	"log"
)

// Notifier shows a blocking notification to the player
type Notifier interface {
	Notify(text string)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(text string)

// Notify calls f(text)
func (f NotifierFunc) Notify(text string) {
	f(text)
}

// Tracker completes quests by id and announces each completion once
type Tracker struct {
	log      *Log
	logger   *log.Logger
	notifier Notifier
}

// NewTracker creates a tracker that owns the given log.
// A nil logger discards log output; a nil notifier drops notifications.
func NewTracker(questLog *Log, logger *log.Logger, notifier Notifier) *Tracker {
	if questLog == nil {
		questLog = &Log{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Tracker{
		log:      questLog,
		logger:   logger,
		notifier: notifier,
	}
}

// Log returns the tracked quest log
func (t *Tracker) Log() *Log {
	return t.log
}

// Trigger completes the quest with the given id.
// Unknown ids and already completed quests are ignored.
// Returns true only when this call completed the quest.
func (t *Tracker) Trigger(id string) bool {
	c, ok := t.log.Complete(id)
	if !ok {
		return false
	}

	t.logger.Print(c.LogLine())
	if t.notifier != nil {
		t.notifier.Notify(c.NotificationText())
	}
	return true
}
