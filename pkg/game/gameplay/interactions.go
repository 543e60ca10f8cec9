package gameplay

import (
	"castlequest/pkg/game/castle"
	"castlequest/pkg/game/state"
)

// Move steps the player and announces any landmark reached
func Move(g *state.Game, d castle.Direction) {
	if !g.Grounds.Move(d) {
		logMessage(g, "The castle walls block the way %s.", d)
		return
	}
	g.MovementCount++

	if l, ok := g.Grounds.CurrentLandmark(); ok {
		logMessage(g, "You arrive at ROOM{%s}.", l.Name)
	}
}

// Talk starts a conversation with the nearest character and shows the first line
func Talk(g *state.Game) {
	l, ok := g.Grounds.NearbyCharacter()
	if !ok {
		logMessage(g, "Nothing to talk to here.")
		return
	}
	if err := g.Dialogue.Start(l.CharacterID); err != nil {
		logMessage(g, "%v", err)
		return
	}
	AdvanceDialogue(g)
}

// AdvanceDialogue shows the next line of the active conversation.
// Finishing a quest-giving conversation triggers its quest through the tracker.
func AdvanceDialogue(g *state.Game) {
	line, ok := g.Dialogue.Advance()
	if !ok {
		return
	}
	g.AddMessage("SPEAKER{" + line.Speaker + "}: " + line.Text)
	if !line.Finished {
		logMessage(g, "SUBTLE{(press T to continue)}")
	}
	g.Dialogue.Shown(line)
}

// PopBalloon pops a balloon at the stall
func PopBalloon(g *state.Game) {
	if !g.Grounds.IsNear(castle.BalloonStall) {
		logMessage(g, "The balloon stall is too far away.")
		return
	}
	b, ok := g.Balloons.PopAny()
	if !ok {
		return
	}
	logMessage(g, "Pop! A ITEM{%s} balloon bursts. %s", b.Color, g.Balloons.Scoreboard())
}
