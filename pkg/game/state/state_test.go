package state

import (
	"fmt"
	"testing"
)

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame(nil, nil, nil, nil)
	for i := 1; i <= 7; i++ {
		g.AddMessage(fmt.Sprintf("msg %d", i))
	}

	got := g.MessageTexts()
	if len(got) != maxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(got), maxMessages)
	}
	if got[0] != "msg 3" || got[4] != "msg 7" {
		t.Errorf("Messages = %v, want [msg 3 .. msg 7]", got)
	}
}

func TestClearMessages(t *testing.T) {
	g := NewGame(nil, nil, nil, nil)
	g.AddMessage("hello")
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("len(Messages) = %d, want 0", len(g.Messages))
	}
}
