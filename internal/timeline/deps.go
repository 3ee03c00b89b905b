package timeline

import (
	"fmt"
	"math"
)

// ArrowInsetPx is how far short of the successor's left edge a connector ends,
// leaving room for the arrowhead.
const ArrowInsetPx = 6

// Connector is a rendered dependency curve from a predecessor's trailing
// edge to a successor's leading edge.
type Connector struct {
	FromID string
	ToID   string
	FromX  float64
	FromY  float64
	ToX    float64
	ToY    float64
	Path   string // SVG path data, cubic Bézier
	// Emphasized is set when either endpoint is hovered or selected.
	Emphasized bool
}

// RouteDependencies returns one connector per (predecessor, successor) pair
// whose predecessor bar is present and ends strictly before the successor
// starts. Pairs with a missing predecessor or toX <= fromX are skipped.
// Each pair is independent, so cycles in the graph terminate.
func RouteDependencies(bars []Bar, dependsOn map[string][]string, hoverID, selectedID string) []Connector {
	byID := make(map[string]int, len(bars))
	for i, b := range bars {
		byID[b.ItemID] = i
	}

	var out []Connector
	for _, succ := range bars {
		for _, predID := range dependsOn[succ.ItemID] {
			pi, ok := byID[predID]
			if !ok {
				continue
			}
			pred := bars[pi]
			fromX, toX := pred.Right(), succ.Left
			if toX <= fromX {
				continue
			}
			c := Connector{
				FromID: pred.ItemID,
				ToID:   succ.ItemID,
				FromX:  fromX,
				FromY:  pred.CenterY(),
				ToX:    toX,
				ToY:    succ.CenterY(),
			}
			c.Path = curvePath(c.FromX, c.FromY, c.ToX, c.ToY)
			c.Emphasized = isEndpoint(c, hoverID) || isEndpoint(c, selectedID)
			out = append(out, c)
		}
	}
	return out
}

func isEndpoint(c Connector, id string) bool {
	return id != "" && (c.FromID == id || c.ToID == id)
}

// curvePath builds an S-curve whose control points are offset horizontally
// by half the span, so the curve leaves and enters both bars horizontally.
func curvePath(fromX, fromY, toX, toY float64) string {
	endX := toX - math.Min(ArrowInsetPx, (toX-fromX)/2)
	offset := (endX - fromX) / 2
	return fmt.Sprintf("M %s %s C %s %s, %s %s, %s %s",
		num(fromX), num(fromY),
		num(fromX+offset), num(fromY),
		num(endX-offset), num(toY),
		num(endX), num(toY))
}

func num(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
