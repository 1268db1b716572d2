// pkg/taxi/heuristic.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package taxi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"

	"github.com/V1centeB/groundops/pkg/util"
)

// Heuristic estimates the remaining cost from a joint state to the goal
// tuple. Both implementations below are admissible and consistent under
// the unit joint-step cost model (spec.md §4.2).
type Heuristic interface {
	H(state JointState, goals []Cell) int
}

// ManhattanHeuristic (H1) sums each agent's Manhattan distance to its
// goal, ignoring obstacles and other agents.
type ManhattanHeuristic struct{}

func (ManhattanHeuristic) H(state JointState, goals []Cell) int {
	total := 0
	for i, c := range state {
		total += util.Abs(c.Row-goals[i].Row) + util.Abs(c.Col-goals[i].Col)
	}
	return total
}

// Unreachable is the heuristic value reported for a pair of cells with no
// traversable path between them, signaling infeasibility (spec.md §4.2
// H2 definition).
const Unreachable = math.MaxInt32

// ShortestPathHeuristic (H2) sums each agent's true shortest-path
// distance on the traversable subgraph (ignoring other agents). The
// distance table is precomputed once and shared read-only across every
// heuristic evaluation during a search (spec.md §4.3, §5).
type ShortestPathHeuristic struct {
	dist [][]int // dist[cellIndex(u)][cellIndex(v)]
	rows int
	cols int
}

func (h *ShortestPathHeuristic) index(c Cell) int { return c.Row*h.cols + c.Col }

func (h *ShortestPathHeuristic) H(state JointState, goals []Cell) int {
	total := 0
	for i, c := range state {
		d := h.dist[h.index(c)][h.index(goals[i])]
		if d == Unreachable {
			return Unreachable
		}
		total += d
	}
	return total
}

// BuildShortestPathHeuristic precomputes all-pairs shortest-path
// distances over m's traversable subgraph (spec.md §4.3). It follows the
// spec's preferred strategy for sparse grids — iterated BFS from every
// traversable cell — but runs that BFS via
// github.com/katalvlaran/lvlath's bfs.BFS over a core.Graph built from
// the grid, rather than a second hand-rolled queue: H1 above needs no
// graph at all, so the graph library earns its keep specifically here.
func BuildShortestPathHeuristic(m *Map) (*ShortestPathHeuristic, error) {
	rows, cols := m.Rows(), m.Cols()
	g := core.NewGraph()

	vertexID := func(c Cell) string { return fmt.Sprintf("%d,%d", c.Row, c.Col) }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := Cell{Row: r, Col: c}
			if !m.Traversable(cell) {
				continue
			}
			if err := g.AddVertex(vertexID(cell)); err != nil {
				return nil, fmt.Errorf("taxi: building H2 graph: %w", err)
			}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := Cell{Row: r, Col: c}
			if !m.Traversable(cell) {
				continue
			}
			// Only add the down/right edge from each cell; the
			// undirected graph exposes it from both endpoints, so
			// adding it again from the neighbor would be a parallel
			// edge the default graph options reject.
			for _, d := range [2]Move{MoveSouth, MoveEast} {
				n := d.Apply(cell)
				if m.Traversable(n) {
					if _, err := g.AddEdge(vertexID(cell), vertexID(n), 0); err != nil {
						return nil, fmt.Errorf("taxi: building H2 graph: %w", err)
					}
				}
			}
		}
	}

	dist := make([][]int, rows*cols)
	for i := range dist {
		dist[i] = make([]int, rows*cols)
		for j := range dist[i] {
			dist[i][j] = Unreachable
		}
	}

	h := &ShortestPathHeuristic{dist: dist, rows: rows, cols: cols}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			src := Cell{Row: r, Col: c}
			if !m.Traversable(src) {
				continue
			}
			srcIdx := h.index(src)
			dist[srcIdx][srcIdx] = 0

			res, err := bfs.BFS(g, vertexID(src))
			if err != nil {
				return nil, fmt.Errorf("taxi: H2 BFS from %v: %w", src, err)
			}
			for r2 := 0; r2 < rows; r2++ {
				for c2 := 0; c2 < cols; c2++ {
					dst := Cell{Row: r2, Col: c2}
					if !m.Traversable(dst) {
						continue
					}
					if depth, ok := res.Depth[vertexID(dst)]; ok {
						dist[srcIdx][h.index(dst)] = depth
					}
				}
			}
		}
	}

	return h, nil
}
