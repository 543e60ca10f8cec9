package renderer

import (
	"testing"

	"castlequest/pkg/engine/input"
	"castlequest/pkg/game/state"
)

// fakeRenderer records notifications
type fakeRenderer struct {
	shown []string
}

func (f *fakeRenderer) Init()                                  {}
func (f *fakeRenderer) Clear()                                 {}
func (f *fakeRenderer) RenderFrame(g *state.Game)              {}
func (f *fakeRenderer) GetInput() input.Intent                 { return input.Intent{} }
func (f *fakeRenderer) StyleText(s string, _ TextStyle) string { return s }
func (f *fakeRenderer) FormatText(s string, _ ...any) string   { return s }
func (f *fakeRenderer) ShowMessage(msg string)                 { f.shown = append(f.shown, msg) }
func (f *fakeRenderer) GetViewportSize() (int, int)            { return 1, 1 }

func TestParseMarkup_Segments(t *testing.T) {
	got := ParseMarkup("Talk to SPEAKER{Sir Aldric} at ROOM{Keep}.")
	want := []Segment{
		{Text: "Talk to ", Style: StyleNormal},
		{Text: "Sir Aldric", Style: StyleSpeaker},
		{Text: " at ", Style: StyleNormal},
		{Text: "Keep", Style: StyleLandmark},
		{Text: ".", Style: StyleNormal},
	}
	if len(got) != len(want) {
		t.Fatalf("ParseMarkup = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseMarkup_UnknownFunctionKept(t *testing.T) {
	if got := PlainText("BOGUS{x} here"); got != "BOGUS{x} here" {
		t.Errorf("PlainText = %q, want %q", got, "BOGUS{x} here")
	}
}

func TestParseMarkup_Empty(t *testing.T) {
	got := ParseMarkup("")
	if len(got) != 1 || got[0].Text != "" {
		t.Errorf("ParseMarkup(\"\") = %+v, want one empty segment", got)
	}
}

func TestPlainText_UntranslatedGT(t *testing.T) {
	if got := PlainText("GT{Welcome to the castle!}"); got != "Welcome to the castle!" {
		t.Errorf("PlainText = %q, want %q", got, "Welcome to the castle!")
	}
}

func TestNotifier_UsesCurrentRenderer(t *testing.T) {
	prev := Current
	defer SetRenderer(prev)

	f := &fakeRenderer{}
	n := Notifier()
	SetRenderer(f)
	n.Notify("Quest Completed: Pop 5 balloons")

	if len(f.shown) != 1 || f.shown[0] != "Quest Completed: Pop 5 balloons" {
		t.Errorf("shown = %q, want one notification", f.shown)
	}
}

func TestGetInput_NoRendererQuits(t *testing.T) {
	prev := Current
	defer SetRenderer(prev)

	SetRenderer(nil)
	if got := GetInput(); got.Action != input.ActionQuit {
		t.Errorf("GetInput() with no renderer = %v, want Quit", input.ActionName(got.Action))
	}
}
