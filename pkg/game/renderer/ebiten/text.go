package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"castlequest/pkg/game/renderer"
)

// getSansFontFace returns the cached UI font face
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   uiFontSize,
		}
	}
	return e.cachedSansFace
}

// styleColor maps a markup style to a palette color
func styleColor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StyleLandmark:
		return colorLandmark
	case renderer.StyleItem:
		return colorItem
	case renderer.StyleAction, renderer.StyleActionShort:
		return colorAction
	case renderer.StyleQuest:
		return colorQuest
	case renderer.StyleQuestDone:
		return colorQuestDone
	case renderer.StyleDenied:
		return colorDenied
	case renderer.StyleSubtle:
		return colorSubtle
	case renderer.StyleSpeaker:
		return colorSpeaker
	default:
		return colorText
	}
}

// drawColoredText draws plain text in one color with its top-left at x, y
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.getSansFontFace(), op)
}

// drawMarkup draws a message with markup, coloring each segment
func (e *EbitenRenderer) drawMarkup(screen *ebiten.Image, msg string, x, y float64) {
	face := e.getSansFontFace()
	currentX := x
	for _, seg := range renderer.ParseMarkup(msg) {
		if seg.Text == "" {
			continue
		}
		e.drawColoredText(screen, seg.Text, currentX, y, styleColor(seg.Style))
		w, _ := text.Measure(seg.Text, face, 0)
		currentX += w
	}
}

// getTextWidth returns the width of a string in pixels at UI font size
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	w, _ := text.Measure(renderer.PlainText(str), e.getSansFontFace(), 0)
	return w
}
