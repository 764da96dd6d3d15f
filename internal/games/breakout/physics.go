package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Edge identifies a side of a rectangle.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Horizontal reports whether a hit on this edge reverses horizontal motion.
func (e Edge) Horizontal() bool {
	return e == EdgeLeft || e == EdgeRight
}

// Overlaps is the broad-phase test between a ball and a rectangle.
// The circle is treated as its bounding square, so a ball just off a corner
// still counts as touching. Known approximation, kept as is.
func Overlaps(center core.Point, radius float64, r core.Rect) bool {
	return center.X+radius > r.X &&
		center.X-radius < r.Right() &&
		center.Y+radius > r.Y &&
		center.Y-radius < r.Bottom()
}

// PaddleBounce maps the horizontal offset of the ball from the paddle center
// to a new direction. Hits further from the center deflect harder; vy always
// points up and gets shallower as |vx| grows. The result is not normalized.
func PaddleBounce(ballX float64, paddle core.Rect, b config.BounceConfig) (vx, vy float64) {
	vx = ((paddle.Center().X-ballX)*-b.Gain)*b.Damp + b.Bias
	vy = -1 + math.Abs(vx)
	return vx, vy
}

// segmentDistance returns the distance from p to the segment (x1,y1)-(x2,y2),
// projecting p onto the segment and clamping to its endpoints.
func segmentDistance(p core.Point, x1, y1, x2, y2 float64) float64 {
	dx := math.Abs(x2 - x1)
	dy := math.Abs(y2 - y1)

	cx, cy := x1, y1
	if lenSq := dx*dx + dy*dy; lenSq > 0 {
		u := ((p.X-x1)*dx + (p.Y-y1)*dy) / lenSq
		switch {
		case u < 0:
			cx, cy = x1, y1
		case u > 1:
			cx, cy = x2, y2
		default:
			cx, cy = x1+u*dx, y1+u*dy
		}
	}
	ex, ey := p.X-cx, p.Y-cy
	return math.Sqrt(ex*ex + ey*ey)
}

// EdgeDistances returns the distance from p to each edge of r, indexed by Edge.
func EdgeDistances(p core.Point, r core.Rect) [4]float64 {
	var d [4]float64
	d[EdgeLeft] = segmentDistance(p, r.X, r.Y, r.X, r.Bottom())
	d[EdgeRight] = segmentDistance(p, r.Right(), r.Y, r.Right(), r.Bottom())
	d[EdgeTop] = segmentDistance(p, r.X, r.Y, r.Right(), r.Y)
	d[EdgeBottom] = segmentDistance(p, r.X, r.Bottom(), r.Right(), r.Bottom())
	return d
}

// NearestEdge returns the edge of r closest to p.
// On exact ties left and right win over top and bottom.
func NearestEdge(p core.Point, r core.Rect) Edge {
	d := EdgeDistances(p, r)
	m := math.Min(math.Min(d[EdgeLeft], d[EdgeRight]), math.Min(d[EdgeTop], d[EdgeBottom]))

	switch m {
	case d[EdgeLeft]:
		return EdgeLeft
	case d[EdgeRight]:
		return EdgeRight
	case d[EdgeTop]:
		return EdgeTop
	default:
		return EdgeBottom
	}
}

// BlockBounce reflects (vx, vy) off the edge of the block nearest to the ball
// center. Exactly one component is inverted.
func BlockBounce(center core.Point, vx, vy float64, block core.Rect) (nvx, nvy float64, edge Edge) {
	edge = NearestEdge(center, block)
	if edge.Horizontal() {
		return -vx, vy, edge
	}
	return vx, -vy, edge
}
