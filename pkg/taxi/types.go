// pkg/taxi/types.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package taxi implements the TAXI joint-state A* planner: it routes a
// fleet of aircraft simultaneously across a grid airfield from initial
// cells to goal cells, minimizing makespan, using one of two admissible
// heuristics.
package taxi

import "fmt"

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

// CellKind classifies a Map cell.
type CellKind int

const (
	Open CellKind = iota
	Yellow
	Blocked
)

// Map is a 4-connected grid airfield.
type Map struct {
	Grid [][]CellKind // Grid[row][col]
}

func (m *Map) Rows() int { return len(m.Grid) }
func (m *Map) Cols() int {
	if len(m.Grid) == 0 {
		return 0
	}
	return len(m.Grid[0])
}

// InBounds reports whether c lies within the grid.
func (m *Map) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < m.Rows() && c.Col >= 0 && c.Col < m.Cols()
}

// At returns the kind of the cell at c; callers must ensure c is in
// bounds (use InBounds first).
func (m *Map) At(c Cell) CellKind {
	return m.Grid[c.Row][c.Col]
}

// Traversable reports whether c is in bounds and not Blocked.
func (m *Map) Traversable(c Cell) bool {
	return m.InBounds(c) && m.At(c) != Blocked
}

// Agent is one aircraft's start and goal cell. Agents are indistinguishable
// other than by their index in the fleet slice.
type Agent struct {
	Start, Goal Cell
}

// Move is one agent's per-step displacement; the move alphabet is
// {N, S, E, W, WAIT}.
type Move struct {
	DR, DC int
}

var (
	MoveNorth = Move{DR: -1, DC: 0}
	MoveSouth = Move{DR: 1, DC: 0}
	MoveWest  = Move{DR: 0, DC: -1}
	MoveEast  = Move{DR: 0, DC: 1}
	MoveWait  = Move{DR: 0, DC: 0}
)

// Moves is the per-agent move alphabet, in a fixed order used to generate
// joint moves deterministically.
var Moves = [5]Move{MoveNorth, MoveSouth, MoveWest, MoveEast, MoveWait}

func (m Move) Apply(c Cell) Cell {
	return Cell{Row: c.Row + m.DR, Col: c.Col + m.DC}
}

// Arrow renders a move as the direction glyph spec.md §4.2 requires.
func (m Move) Arrow() string {
	switch m {
	case MoveNorth:
		return "↑"
	case MoveSouth:
		return "↓"
	case MoveWest:
		return "←"
	case MoveEast:
		return "→"
	default:
		return "w"
	}
}

// JointState is the tuple of every agent's current cell; it is exactly
// the search-state key (time is not part of it — see spec.md §4.2 and
// §9's "State key without time").
type JointState []Cell

// key encodes a JointState as a comparable map key.
func (s JointState) key() string {
	// Each cell contributes a fixed-width-ish token separated by ';';
	// collisions between distinct states are impossible because ';' and
	// ',' never appear inside an integer's decimal representation.
	buf := make([]byte, 0, len(s)*8)
	for i, c := range s {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = appendInt(buf, c.Row)
		buf = append(buf, ',')
		buf = appendInt(buf, c.Col)
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	return fmt.Appendf(buf, "%d", v)
}

func (s JointState) Equal(o JointState) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// SearchNode is one state in the A* frontier/closed set.
type SearchNode struct {
	State  JointState
	G      int
	H      int
	Parent *SearchNode
	Move   []Move // the joint move that produced State from Parent.State
}

func (n *SearchNode) F() int { return n.G + n.H }
