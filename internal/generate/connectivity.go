package generate

import (
	"errors"
	"sort"

	"maze-crawler/internal/gamemap"
)

// ErrGenerationFailed is returned when the repair pass cannot join all
// walkable regions within its attempt cap. Callers should retry with a new
// seed rather than ship a dungeon that cannot be completed.
var ErrGenerationFailed = errors.New("generate: dungeon disconnected after repair attempts")

const repairAttempts = 10

// Connected reports whether every non-wall cell is reachable from the
// start cell via a 4-connected walk over non-wall cells.
func Connected(g *gamemap.Grid) bool {
	start, ok := g.Find(gamemap.CellStart)
	if !ok {
		return false
	}
	total := g.Width*g.Height - g.Count(gamemap.CellWall)
	return len(reachableFrom(g, start)) == total
}

// reachableFrom flood-fills from p over non-wall cells.
func reachableFrom(g *gamemap.Grid, p gamemap.Position) map[gamemap.Position]bool {
	seen := map[gamemap.Position]bool{}
	if g.IsWall(p.X, p.Y) {
		return seen
	}
	stack := []gamemap.Position{p}
	seen[p] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range [4]gamemap.Position{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			n := gamemap.Position{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !g.InBounds(n.X, n.Y) || seen[n] || g.IsWall(n.X, n.Y) {
				continue
			}
			seen[n] = true
			stack = append(stack, n)
		}
	}
	return seen
}

// ensureConnected runs the bounded repair pass: while more than one
// walkable region exists, carve the shortest Manhattan connection between
// the nearest cells of the two largest regions, then re-derive regions.
func ensureConnected(g *gamemap.Grid) error {
	for attempt := 0; attempt < repairAttempts; attempt++ {
		regs := walkableRegions(g)
		if len(regs) <= 1 {
			return nil
		}
		a, b := nearestPair(regs[0], regs[1])
		carveConnection(g, a, b)
	}
	if len(walkableRegions(g)) <= 1 {
		return nil
	}
	return ErrGenerationFailed
}

// walkableRegions returns all 4-connected non-wall regions, largest first.
func walkableRegions(g *gamemap.Grid) [][]gamemap.Position {
	seen := map[gamemap.Position]bool{}
	var regions [][]gamemap.Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := gamemap.Position{X: x, Y: y}
			if g.IsWall(x, y) || seen[p] {
				continue
			}
			var region []gamemap.Position
			for q := range reachableFrom(g, p) {
				seen[q] = true
				region = append(region, q)
			}
			// Row-major order, so nearestPair ties resolve the same way
			// every run regardless of map iteration.
			sort.Slice(region, func(i, j int) bool {
				if region[i].Y != region[j].Y {
					return region[i].Y < region[j].Y
				}
				return region[i].X < region[j].X
			})
			regions = append(regions, region)
		}
	}
	sort.Slice(regions, func(i, j int) bool { return len(regions[i]) > len(regions[j]) })
	return regions
}

// nearestPair returns the cell pair (one from each region) with the
// smallest Manhattan distance.
func nearestPair(a, b []gamemap.Position) (gamemap.Position, gamemap.Position) {
	bestA, bestB := a[0], b[0]
	best := abs(bestA.X-bestB.X) + abs(bestA.Y-bestB.Y)
	for _, pa := range a {
		for _, pb := range b {
			if d := abs(pa.X-pb.X) + abs(pa.Y-pb.Y); d < best {
				best = d
				bestA, bestB = pa, pb
			}
		}
	}
	return bestA, bestB
}

// carveConnection digs an L-shaped passage from a to b, converting only
// wall cells so existing doors and markers survive.
func carveConnection(g *gamemap.Grid, a, b gamemap.Position) {
	x, y := a.X, a.Y
	for x != b.X {
		if x < b.X {
			x++
		} else {
			x--
		}
		if g.At(x, y) == gamemap.CellWall {
			g.Set(x, y, gamemap.CellFloor)
		}
	}
	for y != b.Y {
		if y < b.Y {
			y++
		} else {
			y--
		}
		if g.At(x, y) == gamemap.CellWall {
			g.Set(x, y, gamemap.CellFloor)
		}
	}
}
