package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "castlequest/pkg/engine/input"
	"castlequest/pkg/game/castle"
	"castlequest/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	// An active conversation takes every key until it ends
	if c, ok := g.Dialogue.Active(); ok {
		switch intent.Action {
		case engineinput.ActionTalk, engineinput.ActionConfirm:
			AdvanceDialogue(g)
		case engineinput.ActionQuit:
			g.Quit = true
		case engineinput.ActionNone:
		default:
			logMessage(g, "SPEAKER{%s} is still talking.", c.Name)
		}
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		if intent.Code != "" {
			logMessage(g, "Unknown command: %s", intent.Code)
		}
		return

	case engineinput.ActionConfirm:
		return

	case engineinput.ActionQuit:
		logMessage(g, "Farewell, traveller.")
		g.Quit = true
		return

	case engineinput.ActionHelp:
		ShowHelp(g)
		return

	case engineinput.ActionQuests:
		ShowQuests(g)
		return

	case engineinput.ActionTalk:
		Talk(g)
		return

	case engineinput.ActionPop:
		PopBalloon(g)
		return

	case engineinput.ActionMoveNorth:
		Move(g, castle.North)
		return

	case engineinput.ActionMoveSouth:
		Move(g, castle.South)
		return

	case engineinput.ActionMoveEast:
		Move(g, castle.East)
		return

	case engineinput.ActionMoveWest:
		Move(g, castle.West)
		return
	}

	logMessage(g, "%s", gotext.Get("Unknown command."))
}

// logMessage adds a translated, formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}
