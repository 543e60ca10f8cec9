package gameplay

import (
	"strings"

	engineinput "castlequest/pkg/engine/input"
	"castlequest/pkg/game/state"
)

// helpActions lists the actions shown by ShowHelp, in display order
var helpActions = []engineinput.Action{
	engineinput.ActionTalk,
	engineinput.ActionPop,
	engineinput.ActionQuests,
	engineinput.ActionQuit,
}

// ShowHelp lists the key bindings for the main actions
func ShowHelp(g *state.Game) {
	bindings := engineinput.GetBindingsByAction()
	logMessage(g, "Move with the arrow keys or ACTION{n/s/e/w}.")
	for _, a := range helpActions {
		logMessage(g, "%s: ACTION{%s}", engineinput.ActionName(a), strings.Join(bindings[a], ", "))
	}
}

// ShowQuests lists the quest log into the message pane
func ShowQuests(g *state.Game) {
	quests := g.Quests.Log().Quests()
	if len(quests) == 0 {
		logMessage(g, "Your quest log is empty.")
		return
	}
	for _, q := range quests {
		mark := "[ ]"
		if q.Completed {
			mark = "[x]"
		}
		logMessage(g, "%s QUEST{%s}", mark, q.Description)
	}
}
