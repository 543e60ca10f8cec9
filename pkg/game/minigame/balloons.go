// Package minigame implements the balloon-popping game at the fair.
package minigame

import (
	"fmt"
	"math/rand"
	"sort"
)

// Defaults for the balloon field
const (
	DefaultMaxAloft = 6
	DefaultTarget   = 5
	DefaultLanes    = 5
)

var balloonColors = []string{"red", "blue", "yellow", "green", "purple"}

// Balloon is a single balloon drifting in a lane
type Balloon struct {
	ID    int
	Color string
	Lane  int
}

// Balloons is the field of balloons and the player's score
type Balloons struct {
	MaxAloft int
	Lanes    int
	Target   int
	QuestID  string // reported to OnTarget when Score reaches Target

	// OnTarget is called once, when Score first reaches Target
	OnTarget func(questID string)

	Score int

	rng     *rand.Rand
	aloft   map[int]Balloon
	nextID  int
	reached bool
}

// NewBalloons creates an empty field using the given random source
func NewBalloons(rng *rand.Rand, questID string) *Balloons {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Balloons{
		MaxAloft: DefaultMaxAloft,
		Lanes:    DefaultLanes,
		Target:   DefaultTarget,
		QuestID:  questID,
		rng:      rng,
		aloft:    make(map[int]Balloon),
		nextID:   1,
	}
}

// Spawn fills the field up to MaxAloft and returns the new balloons
func (b *Balloons) Spawn() []Balloon {
	var spawned []Balloon
	for len(b.aloft) < b.MaxAloft {
		bl := Balloon{
			ID:    b.nextID,
			Color: balloonColors[b.rng.Intn(len(balloonColors))],
			Lane:  b.rng.Intn(b.lanes()),
		}
		b.nextID++
		b.aloft[bl.ID] = bl
		spawned = append(spawned, bl)
	}
	return spawned
}

// Aloft returns the balloons in the field, ordered by id
func (b *Balloons) Aloft() []Balloon {
	out := make([]Balloon, 0, len(b.aloft))
	for _, bl := range b.aloft {
		out = append(out, bl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Pop pops the balloon with the given id. Returns false if it is not aloft.
func (b *Balloons) Pop(id int) bool {
	if _, ok := b.aloft[id]; !ok {
		return false
	}
	delete(b.aloft, id)
	b.Score++

	if !b.reached && b.Score >= b.Target {
		b.reached = true
		if b.OnTarget != nil {
			b.OnTarget(b.QuestID)
		}
	}
	return true
}

// PopAny pops the oldest balloon aloft, spawning a new volley if the field is empty
func (b *Balloons) PopAny() (Balloon, bool) {
	if len(b.aloft) == 0 {
		b.Spawn()
	}
	aloft := b.Aloft()
	if len(aloft) == 0 {
		return Balloon{}, false
	}
	return aloft[0], b.Pop(aloft[0].ID)
}

// TargetReached reports whether the score has reached the target
func (b *Balloons) TargetReached() bool {
	return b.reached
}

// Scoreboard returns the score line shown in the HUD
func (b *Balloons) Scoreboard() string {
	return fmt.Sprintf("Balloons popped: %d/%d", b.Score, b.Target)
}

func (b *Balloons) lanes() int {
	if b.Lanes <= 0 {
		return 1
	}
	return b.Lanes
}
