// Package ebiten provides an Ebiten-based 2D graphical renderer for Castle Quest.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{24, 28, 48, 255}    // Night-sky blue
	colorText            = color.RGBA{220, 220, 240, 255} // Soft off-white
	colorSubtle          = color.RGBA{130, 140, 180, 255} // Muted blue-gray for labels
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorItem            = color.RGBA{255, 170, 210, 255} // Balloon pink
	colorLandmark        = color.RGBA{150, 190, 255, 255} // Light blue
	colorQuest           = color.RGBA{255, 220, 120, 255} // Gold for pending quests
	colorQuestDone       = color.RGBA{120, 230, 140, 255} // Green for completed quests
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorSpeaker         = color.RGBA{120, 220, 230, 255} // Cyan for character names
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorPanelBorder     = color.RGBA{80, 80, 100, 255}
	colorOverlay         = color.RGBA{0, 0, 0, 160}

	// Minimap colors match the HUD stub: black field, red player marker, white border
	colorMinimapField    = color.RGBA{0, 0, 0, 255}
	colorMinimapBorder   = color.RGBA{255, 255, 255, 255}
	colorMinimapPlayer   = color.RGBA{255, 0, 0, 255}
	colorMinimapLandmark = color.RGBA{150, 150, 170, 255}
)

// Layout constants
const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 640
	uiFontSize          = 16
	lineHeight          = uiFontSize + 6
	panelPadding        = 10
	minimapMargin       = 10
	maxVisibleMessages  = 5
	inputBufferSize     = 16
)
