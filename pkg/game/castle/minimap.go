package castle

import "strings"

// Minimap HUD defaults
const (
	MinimapSize        = 200
	PlayerMarkerSize   = 10
	LandmarkMarkerSize = 6
)

// Marker is a square on the minimap, in pixels from the top-left corner
type Marker struct {
	X, Y  float64
	Size  float64
	Label string
}

// Minimap is the HUD projection of the grounds onto a square
type Minimap struct {
	Size      int
	Player    Marker
	Landmarks []Marker
}

// MinimapLayout projects the grounds onto a size×size square.
// Markers are centered on the cell they represent.
func MinimapLayout(g *Grounds, size int) Minimap {
	m := Minimap{Size: size}
	if g == nil || g.rows == 0 || g.cols == 0 {
		return m
	}

	for _, l := range g.landmarks {
		m.Landmarks = append(m.Landmarks, g.marker(l.Row, l.Col, size, LandmarkMarkerSize, l.Name))
	}
	m.Player = g.marker(g.playerRow, g.playerCol, size, PlayerMarkerSize, "")
	return m
}

func (g *Grounds) marker(row, col, size int, markerSize float64, label string) Marker {
	cx := (float64(col) + 0.5) * float64(size) / float64(g.cols)
	cy := (float64(row) + 0.5) * float64(size) / float64(g.rows)
	return Marker{
		X:     cx - markerSize/2,
		Y:     cy - markerSize/2,
		Size:  markerSize,
		Label: label,
	}
}

// ASCII renders the grounds as text rows: '@' for the player, the first
// letter of a landmark's name, '.' for open ground.
func (g *Grounds) ASCII() []string {
	lines := make([]string, 0, g.rows)
	for r := 0; r < g.rows; r++ {
		var sb strings.Builder
		for c := 0; c < g.cols; c++ {
			switch l, ok := g.LandmarkAt(r, c); {
			case r == g.playerRow && c == g.playerCol:
				sb.WriteByte('@')
			case ok && l.Name != "":
				sb.WriteByte(l.Name[0])
			default:
				sb.WriteByte('.')
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}
