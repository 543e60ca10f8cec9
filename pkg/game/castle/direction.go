package castle

import "strings"

// Direction represents a cardinal direction on the castle grounds
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// ParseDirection maps a command or key code to a direction.
// Accepts full names, single letters and arrow_* codes.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "arrow_up":
		return North, true
	case "east", "e", "arrow_right":
		return East, true
	case "south", "s", "arrow_down":
		return South, true
	case "west", "w", "arrow_left":
		return West, true
	}
	return 0, false
}
