package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"castlequest/pkg/engine/input"
	"castlequest/pkg/engine/terminal"
	"castlequest/pkg/game/renderer"
	"castlequest/pkg/game/state"
)

// Icons for the text minimap
const (
	PlayerIcon = "@"
	IconGround = "."
)

const (
	clearScreen  = "\033[H\033[2J"
	noticeIndent = "  "
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorLandmark    color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorQuest       color.Style
	colorQuestDone   color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorSpeaker     color.Style
	colorNotice      color.Style

	out          io.Writer
	readIntent   func() input.Intent
	waitForEnter func()
}

// New creates a new TUI renderer on stdin/stdout
func New() *TUIRenderer {
	return &TUIRenderer{
		out:          os.Stdout,
		readIntent:   input.GetInputWithArrows,
		waitForEnter: input.WaitForEnter,
	}
}

// NewWithIO creates a TUI renderer writing to out. readIntent supplies player
// intents and waitForEnter blocks until a notification is dismissed.
func NewWithIO(out io.Writer, readIntent func() input.Intent, waitForEnter func()) *TUIRenderer {
	return &TUIRenderer{
		out:          out,
		readIntent:   readIntent,
		waitForEnter: waitForEnter,
	}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorLandmark = color.Style{color.FgBlue}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorQuest = color.Style{color.FgYellow}
	t.colorQuestDone = color.Style{color.FgGreen}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgRed, color.BgBlack, color.OpBold}
	t.colorSpeaker = color.Style{color.FgCyan, color.OpBold}
	t.colorNotice = color.Style{color.FgYellow, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, clearScreen)
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	return t.readIntent()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleLandmark:
		return t.colorLandmark.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleQuest:
		return t.colorQuest.Sprint(text)
	case renderer.StyleQuestDone:
		return t.colorQuestDone.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleSpeaker:
		return t.colorSpeaker.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var sb strings.Builder
	for _, seg := range renderer.ParseMarkup(msg) {
		if seg.Style == renderer.StyleAction && len(seg.Text) > 1 {
			sb.WriteString(t.colorActionShort.Sprint(seg.Text[0:1]) + t.colorAction.Sprint(seg.Text[1:]))
			continue
		}
		sb.WriteString(t.StyleText(seg.Text, seg.Style))
	}
	return sb.String()
}

// ShowMessage prints a framed notification and waits for Enter
func (t *TUIRenderer) ShowMessage(msg string) {
	text := t.FormatText("%s", msg)
	width := len([]rune(color.ClearCode(text))) + 4
	border := strings.Repeat("═", width)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, noticeIndent+t.colorNotice.Sprint("╔"+border+"╗"))
	fmt.Fprintln(t.out, noticeIndent+t.colorNotice.Sprint("║  ")+text+t.colorNotice.Sprint("  ║"))
	fmt.Fprintln(t.out, noticeIndent+t.colorNotice.Sprint("╚"+border+"╝"))
	fmt.Fprintln(t.out, noticeIndent+t.colorSubtle.Sprint(gotext.Get("Press Enter to continue")))

	if t.waitForEnter != nil {
		t.waitForEnter()
	}
}

// GetViewportSize returns the terminal dimensions
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	cols, rows = terminal.Size()
	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	if g == nil {
		return
	}
	t.Clear()

	// Location
	if l, ok := g.Grounds.CurrentLandmark(); ok {
		t.printString("GT{You are at} ROOM{%s}\n\n", l.Name)
	} else {
		t.printString("GT{You are on the castle grounds}\n\n")
	}

	t.printMinimap(g)
	t.printQuests(g)
	t.printStatusBar(g)
	t.printMessagesPane(g)

	fmt.Fprint(t.out, "\n> ")
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// printMinimap draws the grounds as a framed grid with the player marker
func (t *TUIRenderer) printMinimap(g *state.Game) {
	lines := g.Grounds.ASCII()
	if len(lines) == 0 {
		return
	}
	edge := t.colorSubtle.Sprint("+" + strings.Repeat("-", len(lines[0])) + "+")

	fmt.Fprintln(t.out, edge)
	for _, line := range lines {
		var sb strings.Builder
		for _, ch := range line {
			switch s := string(ch); s {
			case PlayerIcon:
				sb.WriteString(t.colorPlayer.Sprint(s))
			case IconGround:
				sb.WriteString(t.colorSubtle.Sprint(s))
			default:
				sb.WriteString(t.colorLandmark.Sprint(s))
			}
		}
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("|")+sb.String()+t.colorSubtle.Sprint("|"))
	}
	fmt.Fprintln(t.out, edge)
	fmt.Fprintln(t.out)
}

// printQuests lists the quest log with completion marks
func (t *TUIRenderer) printQuests(g *state.Game) {
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("Quests:")))
	for _, q := range g.Quests.Log().Quests() {
		if q.Completed {
			fmt.Fprintf(t.out, "  %s %s\n", t.colorQuestDone.Sprint("[x]"), t.colorQuestDone.Sprint(q.Description))
		} else {
			fmt.Fprintf(t.out, "  [ ] %s\n", t.colorQuest.Sprint(q.Description))
		}
	}
}

// printStatusBar renders the scoreboard and nearby landmarks
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(g.Balloons.Scoreboard()))

	var names []string
	for _, l := range g.Grounds.Nearby() {
		if cur, ok := g.Grounds.CurrentLandmark(); ok && cur.Name == l.Name {
			continue
		}
		names = append(names, t.colorLandmark.Sprint(l.Name))
	}
	if len(names) > 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("Nearby: "))+strings.Join(names, t.colorSubtle.Sprint(", ")))
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width, _ := terminal.Size()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - len(label)
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText("%s", msg.Text))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
