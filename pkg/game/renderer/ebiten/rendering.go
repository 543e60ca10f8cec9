package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.sansFontSource == nil {
		// Can't draw text without fonts
		return
	}

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid {
		return
	}

	bounds := screen.Bounds()
	screenWidth, screenHeight := bounds.Dx(), bounds.Dy()

	e.drawHeader(screen, &snap)
	e.drawQuestPanel(screen, &snap, panelPadding, 3*lineHeight)
	e.drawMinimap(screen, &snap, screenWidth, screenHeight)
	e.drawMessages(screen, &snap, screenWidth, screenHeight)

	e.noticeMutex.Lock()
	n := e.notice
	e.noticeMutex.Unlock()
	if n != nil {
		e.drawNotice(screen, n.text, screenWidth, screenHeight)
	}
}

// drawHeader draws the current location, nearby landmarks and scoreboard
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap *renderSnapshot) {
	x, y := float64(panelPadding), float64(panelPadding)

	location := gotext.Get("You are on the castle grounds")
	if snap.location != "" {
		location = gotext.Get("You are at") + " ROOM{" + snap.location + "}"
	}
	e.drawMarkup(screen, location, x, y)

	status := snap.scoreboard
	if len(snap.nearby) > 0 {
		status += "    " + gotext.Get("Nearby: ") + "ROOM{" + strings.Join(snap.nearby, ", ") + "}"
	}
	if snap.talking {
		status += "    " + gotext.Get("SUBTLE{(press T to continue)}")
	}
	e.drawMarkup(screen, status, x, y+lineHeight)
}

// drawQuestPanel draws the quest log with completion marks
func (e *EbitenRenderer) drawQuestPanel(screen *ebiten.Image, snap *renderSnapshot, x, y int) {
	title := gotext.Get("Quests:")
	width := e.getTextWidth(title)
	for _, q := range snap.quests {
		if w := e.getTextWidth("[x] " + q.Description); w > width {
			width = w
		}
	}

	panelW := float32(width) + 2*panelPadding
	panelH := float32((len(snap.quests)+1)*lineHeight) + 2*panelPadding
	vector.DrawFilledRect(screen, float32(x)-1, float32(y)-1, panelW+2, panelH+2, colorPanelBorder, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), panelW, panelH, colorPanelBackground, false)

	tx := float64(x + panelPadding)
	ty := float64(y + panelPadding)
	e.drawColoredText(screen, title, tx, ty, colorSubtle)
	for i, q := range snap.quests {
		lineY := ty + float64((i+1)*lineHeight)
		if q.Completed {
			e.drawColoredText(screen, "[x] "+q.Description, tx, lineY, colorQuestDone)
		} else {
			e.drawColoredText(screen, "[ ] "+q.Description, tx, lineY, colorQuest)
		}
	}
}

// drawMinimap draws the HUD minimap in the bottom-right corner
func (e *EbitenRenderer) drawMinimap(screen *ebiten.Image, snap *renderSnapshot, screenWidth, screenHeight int) {
	m := snap.minimap
	if m.Size <= 0 {
		return
	}
	size := float32(m.Size)
	ox := float32(screenWidth-minimapMargin) - size
	oy := float32(screenHeight-minimapMargin) - size

	vector.DrawFilledRect(screen, ox, oy, size, size, colorMinimapField, false)
	vector.StrokeRect(screen, ox-1, oy-1, size+2, size+2, 2, colorMinimapBorder, false)

	for _, l := range m.Landmarks {
		vector.DrawFilledRect(screen, ox+float32(l.X), oy+float32(l.Y), float32(l.Size), float32(l.Size), colorMinimapLandmark, false)
	}
	p := m.Player
	vector.DrawFilledRect(screen, ox+float32(p.X), oy+float32(p.Y), float32(p.Size), float32(p.Size), colorMinimapPlayer, false)
}

// drawMessages draws the most recent messages bottom-left, clear of the minimap
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot, screenWidth, screenHeight int) {
	if len(snap.messages) == 0 {
		return
	}
	visible := snap.messages
	if len(visible) > maxVisibleMessages {
		visible = visible[len(visible)-maxVisibleMessages:]
	}

	panelW := float32(screenWidth - snap.minimap.Size - 3*minimapMargin)
	if panelW < 100 {
		panelW = 100
	}
	panelH := float32(len(visible)*lineHeight + 2*panelPadding)
	bgX := float32(minimapMargin)
	bgY := float32(screenHeight-minimapMargin) - panelH

	vector.DrawFilledRect(screen, bgX-1, bgY-1, panelW+2, panelH+2, colorPanelBorder, false)
	vector.DrawFilledRect(screen, bgX, bgY, panelW, panelH, colorPanelBackground, false)

	for i, msg := range visible {
		e.drawMarkup(screen, msg, float64(bgX)+panelPadding, float64(bgY)+panelPadding+float64(i*lineHeight))
	}
}

// drawNotice draws a modal notification over a dimmed screen
func (e *EbitenRenderer) drawNotice(screen *ebiten.Image, msg string, screenWidth, screenHeight int) {
	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(screenHeight), colorOverlay, false)

	hint := gotext.Get("Press Enter to continue")
	width := e.getTextWidth(msg)
	if hw := e.getTextWidth(hint); hw > width {
		width = hw
	}

	panelW := float32(width) + 4*panelPadding
	panelH := float32(2*lineHeight) + 4*panelPadding
	bgX := (float32(screenWidth) - panelW) / 2
	bgY := (float32(screenHeight) - panelH) / 2

	vector.DrawFilledRect(screen, bgX-2, bgY-2, panelW+4, panelH+4, colorQuest, false)
	vector.DrawFilledRect(screen, bgX, bgY, panelW, panelH, colorPanelBackground, false)

	tx := float64(bgX) + 2*panelPadding
	ty := float64(bgY) + 2*panelPadding
	e.drawMarkup(screen, msg, tx, ty)
	e.drawColoredText(screen, hint, tx, ty+lineHeight, colorSubtle)
}
