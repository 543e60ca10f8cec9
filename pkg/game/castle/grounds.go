// Package castle models the walkable castle grounds, its landmarks and the
// minimap projection used by the HUD.
package castle

// Landmark is a named spot on the grounds, optionally hosting a character
type Landmark struct {
	Name        string
	Row         int
	Col         int
	CharacterID string
}

// Grounds is a rectangular walkable area with the player's position
type Grounds struct {
	rows      int
	cols      int
	landmarks []Landmark

	playerRow int
	playerCol int
}

// Landmark names used by the default grounds
const (
	Gatehouse    = "Gatehouse"
	Keep         = "Keep"
	KnightsPost  = "Knight's Post"
	BalloonStall = "Balloon Stall"
	Well         = "Well"
)

const (
	defaultRows = 9
	defaultCols = 9
	nearbyReach = 1
)

// NewGrounds creates grounds of the given size. The player starts on the
// first landmark, or at the top-left corner if there are none.
// Landmarks outside the bounds are ignored.
func NewGrounds(rows, cols int, landmarks ...Landmark) *Grounds {
	g := &Grounds{rows: rows, cols: cols}
	for _, l := range landmarks {
		if g.IsValidPosition(l.Row, l.Col) {
			g.landmarks = append(g.landmarks, l)
		}
	}
	if len(g.landmarks) > 0 {
		g.playerRow = g.landmarks[0].Row
		g.playerCol = g.landmarks[0].Col
	}
	return g
}

// DefaultGrounds builds the castle courtyard
func DefaultGrounds() *Grounds {
	return NewGrounds(defaultRows, defaultCols,
		Landmark{Name: Gatehouse, Row: 8, Col: 4},
		Landmark{Name: Keep, Row: 0, Col: 4},
		Landmark{Name: KnightsPost, Row: 2, Col: 2, CharacterID: "knight"},
		Landmark{Name: BalloonStall, Row: 6, Col: 6, CharacterID: "jester"},
		Landmark{Name: Well, Row: 4, Col: 4},
	)
}

// Rows returns the number of rows
func (g *Grounds) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grounds) Cols() int {
	return g.cols
}

// Landmarks returns a copy of the landmarks in declaration order
func (g *Grounds) Landmarks() []Landmark {
	out := make([]Landmark, len(g.landmarks))
	copy(out, g.landmarks)
	return out
}

// Player returns the player's position
func (g *Grounds) Player() (row, col int) {
	return g.playerRow, g.playerCol
}

// IsValidPosition checks if a row/col position is within bounds
func (g *Grounds) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Move steps the player one cell. Returns false and stays put at the edge.
func (g *Grounds) Move(d Direction) bool {
	dr, dc := d.Delta()
	if dr == 0 && dc == 0 {
		return false
	}
	row, col := g.playerRow+dr, g.playerCol+dc
	if !g.IsValidPosition(row, col) {
		return false
	}
	g.playerRow, g.playerCol = row, col
	return true
}

// LandmarkAt returns the landmark at the given position
func (g *Grounds) LandmarkAt(row, col int) (Landmark, bool) {
	for _, l := range g.landmarks {
		if l.Row == row && l.Col == col {
			return l, true
		}
	}
	return Landmark{}, false
}

// CurrentLandmark returns the landmark the player stands on
func (g *Grounds) CurrentLandmark() (Landmark, bool) {
	return g.LandmarkAt(g.playerRow, g.playerCol)
}

// Nearby returns landmarks within reach of the player, in declaration order
func (g *Grounds) Nearby() []Landmark {
	var out []Landmark
	for _, l := range g.landmarks {
		if manhattanDistance(g.playerRow, g.playerCol, l.Row, l.Col) <= nearbyReach {
			out = append(out, l)
		}
	}
	return out
}

// NearbyCharacter returns the first nearby landmark hosting a character
func (g *Grounds) NearbyCharacter() (Landmark, bool) {
	for _, l := range g.Nearby() {
		if l.CharacterID != "" {
			return l, true
		}
	}
	return Landmark{}, false
}

// IsNear reports whether the named landmark is within reach
func (g *Grounds) IsNear(name string) bool {
	for _, l := range g.Nearby() {
		if l.Name == name {
			return true
		}
	}
	return false
}

// manhattanDistance calculates the Manhattan distance between two positions
func manhattanDistance(r1, c1, r2, c2 int) int {
	rowDist := r1 - r2
	colDist := c1 - c2
	if rowDist < 0 {
		rowDist = -rowDist
	}
	if colDist < 0 {
		colDist = -colDist
	}
	return rowDist + colDist
}
