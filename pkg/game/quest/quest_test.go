package quest

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

// recordingNotifier captures every notification it is asked to show
type recordingNotifier struct {
	texts []string
}

func (r *recordingNotifier) Notify(text string) {
	r.texts = append(r.texts, text)
}

func newTestTracker(t *testing.T) (*Tracker, *bytes.Buffer, *recordingNotifier) {
	t.Helper()
	var buf bytes.Buffer
	n := &recordingNotifier{}
	return NewTracker(DefaultLog(), log.New(&buf, "", 0), n), &buf, n
}

func logLines(buf *bytes.Buffer) []string {
	s := strings.TrimRight(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestNewLog_RejectsDuplicateID(t *testing.T) {
	_, err := NewLog(
		Quest{ID: "a", Description: "first"},
		Quest{ID: "a", Description: "second"},
	)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("NewLog(dup) err = %v, want ErrDuplicateID", err)
	}
}

func TestNewLog_RejectsEmptyID(t *testing.T) {
	_, err := NewLog(Quest{Description: "nameless"})
	if !errors.Is(err, ErrEmptyID) {
		t.Errorf("NewLog(empty id) err = %v, want ErrEmptyID", err)
	}
}

func TestNewLog_PreservesOrder(t *testing.T) {
	l, err := NewLog(
		Quest{ID: "c", Description: "C"},
		Quest{ID: "a", Description: "A"},
		Quest{ID: "b", Description: "B"},
	)
	if err != nil {
		t.Fatalf("NewLog: %v", err)
	}
	got := l.Quests()
	want := []string{"c", "a", "b"}
	for i, q := range got {
		if q.ID != want[i] {
			t.Errorf("Quests()[%d].ID = %q, want %q", i, q.ID, want[i])
		}
	}
}

func TestTrigger_KnightScenario(t *testing.T) {
	tr, buf, n := newTestTracker(t)

	if !tr.Trigger(TalkKnight) {
		t.Fatal("Trigger(talk-knight) = false, want true")
	}

	quests := tr.Log().Quests()
	if !quests[0].Completed {
		t.Error("talk-knight not completed")
	}
	if quests[1].Completed {
		t.Error("pop-balloons completed, want unchanged")
	}

	if len(n.texts) != 1 || n.texts[0] != "Quest Completed: Speak to the castle knight" {
		t.Errorf("notifications = %q, want [\"Quest Completed: Speak to the castle knight\"]", n.texts)
	}
	lines := logLines(buf)
	if len(lines) != 1 || lines[0] != "Quest completed: Speak to the castle knight" {
		t.Errorf("log lines = %q, want [\"Quest completed: Speak to the castle knight\"]", lines)
	}
}

func TestTrigger_UnknownIDIsSilent(t *testing.T) {
	tr, buf, n := newTestTracker(t)
	before := tr.Log().Quests()

	if tr.Trigger("nonexistent") {
		t.Error("Trigger(nonexistent) = true, want false")
	}

	after := tr.Log().Quests()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("entry %d = %+v, want %+v", i, after[i], before[i])
		}
	}
	if len(n.texts) != 0 {
		t.Errorf("notifications = %q, want none", n.texts)
	}
	if buf.Len() != 0 {
		t.Errorf("log output = %q, want empty", buf.String())
	}
}

func TestTrigger_Idempotent(t *testing.T) {
	tr, buf, n := newTestTracker(t)

	tr.Trigger(PopBalloons)
	if tr.Trigger(PopBalloons) {
		t.Error("second Trigger(pop-balloons) = true, want false")
	}
	tr.Trigger(PopBalloons)

	if len(n.texts) != 1 {
		t.Errorf("len(notifications) = %d, want 1", len(n.texts))
	}
	if got := len(logLines(buf)); got != 1 {
		t.Errorf("len(log lines) = %d, want 1", got)
	}
	if q, _ := tr.Log().Get(PopBalloons); !q.Completed {
		t.Error("pop-balloons reverted to pending")
	}
}

func TestTrigger_LogsBeforeNotifying(t *testing.T) {
	var buf bytes.Buffer
	var logged bool
	n := NotifierFunc(func(string) {
		logged = buf.Len() > 0
	})
	tr := NewTracker(DefaultLog(), log.New(&buf, "", 0), n)

	tr.Trigger(TalkKnight)
	if !logged {
		t.Error("notification shown before log line was written")
	}
}

func TestTrigger_OrderUnaffected(t *testing.T) {
	l, err := NewLog(
		Quest{ID: "one", Description: "1"},
		Quest{ID: "two", Description: "2"},
		Quest{ID: "three", Description: "3"},
	)
	if err != nil {
		t.Fatalf("NewLog: %v", err)
	}
	tr := NewTracker(l, nil, nil)

	for _, id := range []string{"three", "missing", "one", "three"} {
		tr.Trigger(id)
	}

	want := []string{"one", "two", "three"}
	for i, q := range tr.Log().Quests() {
		if q.ID != want[i] {
			t.Errorf("Quests()[%d].ID = %q, want %q", i, q.ID, want[i])
		}
	}
	if got := tr.Log().CompletedCount(); got != 2 {
		t.Errorf("CompletedCount() = %d, want 2", got)
	}
	if pending := tr.Log().Pending(); len(pending) != 1 || pending[0].ID != "two" {
		t.Errorf("Pending() = %+v, want [two]", pending)
	}
}

func TestTrigger_FirstMatchWins(t *testing.T) {
	// Logs built directly can still carry duplicates; only the first is touched.
	l := &Log{quests: []Quest{
		{ID: "dup", Description: "first"},
		{ID: "dup", Description: "second"},
	}}
	n := &recordingNotifier{}
	tr := NewTracker(l, nil, n)

	tr.Trigger("dup")
	tr.Trigger("dup")

	q := l.Quests()
	if !q[0].Completed || q[1].Completed {
		t.Errorf("completed = [%v %v], want [true false]", q[0].Completed, q[1].Completed)
	}
	if len(n.texts) != 1 || n.texts[0] != "Quest Completed: first" {
		t.Errorf("notifications = %q, want [\"Quest Completed: first\"]", n.texts)
	}
}

func TestQuests_ReturnsCopy(t *testing.T) {
	l := DefaultLog()
	q := l.Quests()
	q[0].Completed = true

	if got, _ := l.Get(TalkKnight); got.Completed {
		t.Error("mutating Quests() result changed the log")
	}
}

func TestNewTracker_NilLogAndSinks(t *testing.T) {
	tr := NewTracker(nil, nil, nil)
	if tr.Trigger(TalkKnight) {
		t.Error("Trigger on empty log = true, want false")
	}
	if tr.Log().Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Log().Len())
	}
}
