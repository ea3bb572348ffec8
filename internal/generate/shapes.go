package generate

import (
	"math"
	"math/rand"

	"maze-crawler/internal/gamemap"
)

// roomShape selects the interior-carving algorithm for one room. The shape
// only decides which interior cells become floor; door positions are always
// derived from the rectangle's edges, never from the shape.
type roomShape uint8

const (
	shapeRectangular roomShape = iota
	shapeCircular
	shapeCross
	shapeLShape
	shapeDiamond
	shapeOctagon
	shapeDonut
	shapeCount
)

// carveInterior digs a room's interior into the grid using a shape chosen
// uniformly at random.
func carveInterior(g *gamemap.Grid, rc gamemap.Rect, rng *rand.Rand) {
	carveShape(g, rc, roomShape(rng.Intn(int(shapeCount))), rng)
}

// carveRect digs a plain rectangular interior. Slot-grid layouts use this
// directly so that edge-midpoint doors always open onto floor.
func carveRect(g *gamemap.Grid, rc gamemap.Rect) {
	for y := rc.Top(); y < rc.Bottom(); y++ {
		for x := rc.Left(); x < rc.Right(); x++ {
			g.Set(x, y, gamemap.CellFloor)
		}
	}
}

func carveShape(g *gamemap.Grid, rc gamemap.Rect, shape roomShape, rng *rand.Rand) {
	cx, cy := rc.CenterX(), rc.CenterY()
	short := rc.W
	if rc.H < short {
		short = rc.H
	}
	radius := short / 2

	switch shape {
	case shapeRectangular:
		carveRect(g, rc)
		// Large halls occasionally get corner pillars.
		if rc.W >= 10 && rc.H >= 10 && rng.Float64() < 0.4 {
			pillars := []gamemap.Position{
				{X: rc.Left() + 2, Y: rc.Top() + 2},
				{X: rc.Right() - 3, Y: rc.Top() + 2},
				{X: rc.Left() + 2, Y: rc.Bottom() - 3},
				{X: rc.Right() - 3, Y: rc.Bottom() - 3},
			}
			for _, p := range pillars {
				g.Set(p.X, p.Y, gamemap.CellWall)
			}
		}

	case shapeCircular:
		for y := rc.Top(); y < rc.Bottom(); y++ {
			for x := rc.Left(); x < rc.Right(); x++ {
				if euclid(x-cx, y-cy) <= float64(radius) {
					g.Set(x, y, gamemap.CellFloor)
				}
			}
		}

	case shapeCross:
		bandW := rc.W / 3
		if bandW < 2 {
			bandW = 2
		}
		bandH := rc.H / 3
		if bandH < 2 {
			bandH = 2
		}
		for x := rc.Left(); x < rc.Right(); x++ {
			for y := cy - bandH/2; y <= cy+bandH/2; y++ {
				if y >= rc.Top() && y < rc.Bottom() {
					g.Set(x, y, gamemap.CellFloor)
				}
			}
		}
		for y := rc.Top(); y < rc.Bottom(); y++ {
			for x := cx - bandW/2; x <= cx+bandW/2; x++ {
				if x >= rc.Left() && x < rc.Right() {
					g.Set(x, y, gamemap.CellFloor)
				}
			}
		}

	case shapeLShape:
		// Two overlapping rectangles: the top band and the left band.
		top := gamemap.Rect{X: rc.X, Y: rc.Y, W: rc.W, H: rc.H/2 + 1}
		left := gamemap.Rect{X: rc.X, Y: rc.Y, W: rc.W/2 + 1, H: rc.H}
		carveRect(g, top)
		carveRect(g, left)

	case shapeDiamond:
		for y := rc.Top(); y < rc.Bottom(); y++ {
			for x := rc.Left(); x < rc.Right(); x++ {
				if abs(x-cx)+abs(y-cy) <= radius {
					g.Set(x, y, gamemap.CellFloor)
				}
			}
		}

	case shapeOctagon:
		for y := rc.Top(); y < rc.Bottom(); y++ {
			for x := rc.Left(); x < rc.Right(); x++ {
				dx, dy := abs(x-cx), abs(y-cy)
				if dx+dy <= radius && max(dx, dy) <= radius {
					g.Set(x, y, gamemap.CellFloor)
				}
			}
		}

	case shapeDonut:
		inner := radius / 3
		if inner < 1 {
			inner = 1
		}
		for y := rc.Top(); y < rc.Bottom(); y++ {
			for x := rc.Left(); x < rc.Right(); x++ {
				d := euclid(x-cx, y-cy)
				if d >= float64(inner) && d <= float64(radius) {
					g.Set(x, y, gamemap.CellFloor)
				}
			}
		}
	}
}

func euclid(dx, dy int) float64 {
	return math.Sqrt(float64(dx*dx + dy*dy))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
