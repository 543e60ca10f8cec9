package gameplay

import (
	"bytes"
	"log"
	"strings"
	"testing"

	engineinput "castlequest/pkg/engine/input"
	"castlequest/pkg/game/quest"
	"castlequest/pkg/game/renderer"
	"castlequest/pkg/game/state"
)

// scriptedRenderer feeds a fixed list of codes to the game loop, then quits
type scriptedRenderer struct {
	codes  []string
	frames int
	shown  []string
}

func (s *scriptedRenderer) Init()                                           {}
func (s *scriptedRenderer) Clear()                                          {}
func (s *scriptedRenderer) RenderFrame(g *state.Game)                       { s.frames++ }
func (s *scriptedRenderer) StyleText(t string, _ renderer.TextStyle) string { return t }
func (s *scriptedRenderer) FormatText(t string, _ ...any) string            { return t }
func (s *scriptedRenderer) ShowMessage(msg string)                          { s.shown = append(s.shown, msg) }
func (s *scriptedRenderer) GetViewportSize() (int, int)                     { return 24, 80 }

func (s *scriptedRenderer) GetInput() engineinput.Intent {
	if len(s.codes) == 0 {
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
	code := s.codes[0]
	s.codes = s.codes[1:]
	return engineinput.IntentFromCode(engineinput.DeviceKeyboard, code)
}

// makeGame builds a seeded session that records notifications and log output
func makeGame(t *testing.T) (*state.Game, *[]string, *bytes.Buffer) {
	t.Helper()
	var notes []string
	var buf bytes.Buffer
	g := BuildGame(Config{Seed: 7}, log.New(&buf, "", 0), quest.NotifierFunc(func(s string) {
		notes = append(notes, s)
	}))
	return g, &notes, &buf
}

func send(g *state.Game, codes ...string) {
	for _, c := range codes {
		ProcessIntent(g, engineinput.IntentFromCode(engineinput.DeviceTerminal, c))
	}
}

func lastMessage(g *state.Game) string {
	texts := g.MessageTexts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

func TestBuildGame_Welcome(t *testing.T) {
	g, _, _ := makeGame(t)
	texts := g.MessageTexts()
	if len(texts) != 2 || texts[0] != "Welcome to the castle!" {
		t.Errorf("Messages = %q, want welcome", texts)
	}
	if g.Quests.Log().Len() != 2 {
		t.Errorf("quest log len = %d, want 2", g.Quests.Log().Len())
	}
}

func TestTalk_KnightCompletesQuestOnce(t *testing.T) {
	g, notes, buf := makeGame(t)
	send(g, "n", "n", "n", "n", "n", "w", "w")

	send(g, "t", "t", "t")
	if len(*notes) != 1 || (*notes)[0] != "Quest Completed: Speak to the castle knight" {
		t.Fatalf("notifications = %q, want knight completion", *notes)
	}
	if !strings.Contains(buf.String(), "Quest completed: Speak to the castle knight") {
		t.Errorf("log = %q, want completion line", buf.String())
	}

	// Talking again replays the conversation but not the notification
	send(g, "t", "t", "t")
	if len(*notes) != 1 {
		t.Errorf("len(notifications) = %d after second conversation, want 1", len(*notes))
	}
	if q, _ := g.Quests.Log().Get(quest.TalkKnight); !q.Completed {
		t.Error("talk-knight not completed")
	}
}

func TestTalk_LastLineShownBeforeNotification(t *testing.T) {
	var g *state.Game
	var visible []string
	g = BuildGame(Config{Seed: 7}, nil, quest.NotifierFunc(func(string) {
		visible = g.MessageTexts()
	}))

	send(g, "n", "n", "n", "n", "n", "w", "w", "t", "t", "t")
	if len(visible) == 0 {
		t.Fatal("notifier not called")
	}
	want := "SPEAKER{Sir Aldric}: Enjoy the fair, and mind the jester's balloons."
	if got := visible[len(visible)-1]; got != want {
		t.Errorf("last message at notification = %q, want %q", got, want)
	}
}

func TestTalk_NobodyNearby(t *testing.T) {
	g, notes, _ := makeGame(t)
	send(g, "n", "n")
	send(g, "talk")
	if got := lastMessage(g); got != "Nothing to talk to here." {
		t.Errorf("last message = %q, want %q", got, "Nothing to talk to here.")
	}
	if len(*notes) != 0 {
		t.Errorf("notifications = %q, want none", *notes)
	}
}

func TestTalk_MovementBlockedMidConversation(t *testing.T) {
	g, _, _ := makeGame(t)
	send(g, "n", "n", "n", "n", "n", "w", "w", "t")
	row, col := g.Grounds.Player()

	send(g, "s")
	if r, c := g.Grounds.Player(); r != row || c != col {
		t.Errorf("player moved to (%d,%d) during conversation, want (%d,%d)", r, c, row, col)
	}
	if got := lastMessage(g); !strings.Contains(got, "is still talking") {
		t.Errorf("last message = %q, want still talking", got)
	}
}

func TestPopBalloon_TooFar(t *testing.T) {
	g, _, _ := makeGame(t)
	send(g, "pop")
	if got := lastMessage(g); got != "The balloon stall is too far away." {
		t.Errorf("last message = %q, want too far", got)
	}
	if g.Balloons.Score != 0 {
		t.Errorf("Score = %d, want 0", g.Balloons.Score)
	}
}

func TestPopBalloon_FiveCompletesQuest(t *testing.T) {
	g, notes, _ := makeGame(t)
	send(g, "e", "e", "n")

	send(g, "p", "p", "p", "p")
	if len(*notes) != 0 {
		t.Fatalf("notifications after 4 pops = %q, want none", *notes)
	}
	send(g, "p", "p", "p")
	if len(*notes) != 1 || (*notes)[0] != "Quest Completed: Pop 5 balloons" {
		t.Errorf("notifications = %q, want balloon completion", *notes)
	}
	if !strings.Contains(lastMessage(g), "Balloons popped: 7/5") {
		t.Errorf("last message = %q, want scoreboard", lastMessage(g))
	}
}

func TestMove_EdgeBlocked(t *testing.T) {
	g, _, _ := makeGame(t)
	send(g, "s")
	if g.MovementCount != 0 {
		t.Errorf("MovementCount = %d, want 0", g.MovementCount)
	}
	if got := lastMessage(g); got != "The castle walls block the way South." {
		t.Errorf("last message = %q, want blocked", got)
	}
}

func TestShowQuests_Marks(t *testing.T) {
	g, _, _ := makeGame(t)
	g.Quests.Trigger(quest.PopBalloons)
	send(g, "quests")

	texts := g.MessageTexts()
	got := texts[len(texts)-2:]
	want := []string{"[ ] QUEST{Speak to the castle knight}", "[x] QUEST{Pop 5 balloons}"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("quest line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestProcessIntent_QuitAndUnknown(t *testing.T) {
	g, _, _ := makeGame(t)
	send(g, "dance")
	if got := lastMessage(g); got != "Unknown command: dance" {
		t.Errorf("last message = %q, want unknown command", got)
	}
	send(g, "quit")
	if !g.Quit {
		t.Error("Quit = false after quit, want true")
	}
}

func TestRun_NotifiesThroughCurrentRenderer(t *testing.T) {
	r := &scriptedRenderer{codes: []string{"arrow_right", "arrow_right", "arrow_up", "p", "p", "p", "p", "p"}}
	renderer.SetRenderer(r)
	defer renderer.SetRenderer(nil)

	var buf bytes.Buffer
	g := BuildGame(Config{Seed: 3}, log.New(&buf, "", 0), renderer.Notifier())
	Run(g)

	if !g.Quit {
		t.Error("Quit = false after Run, want true")
	}
	if len(r.shown) != 1 || r.shown[0] != "Quest Completed: Pop 5 balloons" {
		t.Errorf("shown = %q, want balloon completion", r.shown)
	}
	// One frame per intent, plus the quit intent and the final frame
	if want := 8 + 2; r.frames != want {
		t.Errorf("frames = %d, want %d", r.frames, want)
	}
	if got := strings.Count(buf.String(), "Quest completed:"); got != 1 {
		t.Errorf("completion log lines = %d, want 1", got)
	}
}
