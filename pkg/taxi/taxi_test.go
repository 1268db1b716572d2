// pkg/taxi/taxi_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package taxi

import (
	"testing"
)

func openRow(cols int) *Map {
	row := make([]CellKind, cols)
	return &Map{Grid: [][]CellKind{row}}
}

func openGrid(rows, cols int) *Map {
	g := make([][]CellKind, rows)
	for r := range g {
		g[r] = make([]CellKind, cols)
	}
	return &Map{Grid: g}
}

// Scenario 4 (spec.md §8): 1 agent on a 1x5 open row, (0,0) -> (0,4).
// Expect makespan 4, H1(start) == H2(start) == 4, nodes expanded >= 5.
func TestSingleAgentOpenRow(t *testing.T) {
	m := openRow(5)
	agents := []Agent{{Start: Cell{0, 0}, Goal: Cell{0, 4}}}

	h2, err := BuildShortestPathHeuristic(m)
	if err != nil {
		t.Fatalf("BuildShortestPathHeuristic: %v", err)
	}
	start := JointState{{0, 0}}
	goals := []Cell{{0, 4}}
	if got := (ManhattanHeuristic{}).H(start, goals); got != 4 {
		t.Errorf("H1(start) = %d, want 4", got)
	}
	if got := h2.H(start, goals); got != 4 {
		t.Errorf("H2(start) = %d, want 4", got)
	}

	for _, h := range []Heuristic{ManhattanHeuristic{}, h2} {
		sol, err := Search(m, agents, h, nil)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if sol.Makespan != 4 {
			t.Errorf("Makespan = %d, want 4", sol.Makespan)
		}
		if sol.NodesExpanded < 5 {
			t.Errorf("NodesExpanded = %d, want >= 5", sol.NodesExpanded)
		}
		if got := sol.Paths[0][0]; got != (Cell{0, 0}) {
			t.Errorf("path start = %v, want (0,0)", got)
		}
		if got := sol.Paths[0][len(sol.Paths[0])-1]; got != (Cell{0, 4}) {
			t.Errorf("path end = %v, want (0,4)", got)
		}
	}
}

// Scenario 5 (spec.md §8): 2 agents swapping endpoints on a 1x3 row,
// (0,0)<->(0,2) with (0,1) open, is infeasible: the only way to cross is
// a simultaneous vertex conflict at (0,1).
func TestSwapInfeasible(t *testing.T) {
	m := openRow(3)
	agents := []Agent{
		{Start: Cell{0, 0}, Goal: Cell{0, 2}},
		{Start: Cell{0, 2}, Goal: Cell{0, 0}},
	}
	if _, err := Search(m, agents, ManhattanHeuristic{}, nil); err == nil {
		t.Fatal("expected infeasibility error for the swap scenario")
	}
}

// Scenario 6 (spec.md §8): 2 agents on a 3x3 open grid, starts
// (0,0),(2,2), goals (2,2),(0,0); assert optimality against brute force.
func TestTwoAgentsOptimalVsBruteForce(t *testing.T) {
	m := openGrid(3, 3)
	agents := []Agent{
		{Start: Cell{0, 0}, Goal: Cell{2, 2}},
		{Start: Cell{2, 2}, Goal: Cell{0, 0}},
	}

	sol, err := Search(m, agents, ManhattanHeuristic{}, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	best := bruteForceMakespan(t, m, agents)
	if sol.Makespan != best {
		t.Errorf("Makespan = %d, want optimal %d", sol.Makespan, best)
	}
	assertUniversalInvariants(t, m, agents, sol)
}

// bruteForceMakespan performs a breadth-first search over the same joint
// configuration space (via expand) without any heuristic guidance, to
// serve as an independent optimality oracle for the A* result.
func bruteForceMakespan(t *testing.T, m *Map, agents []Agent) int {
	t.Helper()
	start := make(JointState, len(agents))
	goals := make([]Cell, len(agents))
	for i, a := range agents {
		start[i] = a.Start
		goals[i] = a.Goal
	}
	visited := map[string]bool{start.key(): true}
	queue := []JointState{start}
	depth := 0
	for len(queue) > 0 {
		var next []JointState
		for _, s := range queue {
			if allAtGoal(s, goals) {
				return depth
			}
			for _, c := range expand(s, goals, m) {
				k := c.state.key()
				if visited[k] {
					continue
				}
				visited[k] = true
				next = append(next, c.state)
			}
		}
		queue = next
		depth++
	}
	t.Fatal("brute-force BFS exhausted without finding a joint goal state")
	return -1
}

// TestUniversalInvariants exercises spec.md §8's universal invariants on
// a slightly larger instance: no vertex/edge conflicts, goal-parked
// agents never move again, and consecutive joint states differ by at
// most one move per agent in the move alphabet.
func TestUniversalInvariants(t *testing.T) {
	m := openGrid(4, 4)
	agents := []Agent{
		{Start: Cell{0, 0}, Goal: Cell{3, 3}},
		{Start: Cell{0, 3}, Goal: Cell{3, 0}},
		{Start: Cell{3, 0}, Goal: Cell{0, 3}},
	}
	sol, err := Search(m, agents, ManhattanHeuristic{}, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	assertUniversalInvariants(t, m, agents, sol)
}

func assertUniversalInvariants(t *testing.T, m *Map, agents []Agent, sol *Solution) {
	t.Helper()
	n := len(agents)
	steps := len(sol.Paths[0])
	for i := 1; i < n; i++ {
		if len(sol.Paths[i]) != steps {
			t.Fatalf("agent %d path length = %d, want %d", i, len(sol.Paths[i]), steps)
		}
	}

	for tt := 1; tt < steps; tt++ {
		occupied := map[Cell]bool{}
		for i := 0; i < n; i++ {
			cur := sol.Paths[i][tt]
			prev := sol.Paths[i][tt-1]
			dr, dc := cur.Row-prev.Row, cur.Col-prev.Col
			valid := false
			for _, mv := range Moves {
				if mv.DR == dr && mv.DC == dc {
					valid = true
					break
				}
			}
			if !valid {
				t.Errorf("agent %d step %d: displacement (%d,%d) not in move alphabet", i, tt, dr, dc)
			}
			if !m.Traversable(cur) {
				t.Errorf("agent %d step %d: %v not traversable", i, tt, cur)
			}
			if occupied[cur] {
				t.Errorf("vertex conflict at step %d on %v", tt, cur)
			}
			occupied[cur] = true

			if prev == agents[i].Goal && cur != agents[i].Goal {
				t.Errorf("agent %d left its goal cell at step %d", i, tt)
			}

			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				if cur == sol.Paths[j][tt-1] && sol.Paths[j][tt] == prev {
					t.Errorf("edge conflict between agents %d and %d at step %d", i, j, tt)
				}
			}
		}
	}
}

// TestHeuristicOrderingAndConsistency checks H1 <= H2 <= g* on a map
// with a detour, and H2's consistency along the optimal path (spec.md
// §9's admissibility/consistency requirement for both heuristics).
func TestHeuristicOrderingAndConsistency(t *testing.T) {
	// A 3x3 grid with a wall forcing a detour from (0,0) to (2,0).
	m := openGrid(3, 3)
	m.Grid[1][0] = Blocked
	m.Grid[1][1] = Blocked

	h2, err := BuildShortestPathHeuristic(m)
	if err != nil {
		t.Fatalf("BuildShortestPathHeuristic: %v", err)
	}
	agents := []Agent{{Start: Cell{0, 0}, Goal: Cell{2, 0}}}
	goals := []Cell{{2, 0}}
	start := JointState{{0, 0}}

	h1 := ManhattanHeuristic{}.H(start, goals)
	hh2 := h2.H(start, goals)
	if h1 > hh2 {
		t.Errorf("H1(start) = %d, want <= H2(start) = %d", h1, hh2)
	}

	sol, err := Search(m, agents, h2, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if hh2 > sol.Makespan {
		t.Errorf("H2(start) = %d, want <= optimal makespan %d", hh2, sol.Makespan)
	}

	path := sol.Paths[0]
	for i := 0; i+1 < len(path); i++ {
		cur := JointState{path[i]}
		nxt := JointState{path[i+1]}
		hc := h2.H(cur, goals)
		hn := h2.H(nxt, goals)
		if hc > hn+1 {
			t.Errorf("H2 consistency violated at step %d: h(cur)=%d h(next)=%d", i, hc, hn)
		}
	}
}

// TestWaitOnYellowRejected verifies that a joint move resulting in an
// agent waiting on a YELLOW cell is filtered out of expand's output.
func TestWaitOnYellowRejected(t *testing.T) {
	m := openRow(3)
	m.Grid[0][1] = Yellow
	state := JointState{{0, 1}}
	goals := []Cell{{0, 2}} // not yet at goal, so WAIT is a real choice, not forced parking
	for _, c := range expand(state, goals, m) {
		if c.state[0] == (Cell{0, 1}) {
			t.Errorf("expand produced a forbidden wait-on-yellow successor: %+v", c)
		}
	}
}

// TestDirectionsRendering checks the arrow-glyph rendering spec.md
// §4.2/§6.4 require for a path with an east step, a south step and a wait.
func TestDirectionsRendering(t *testing.T) {
	sol := &Solution{Paths: [][]Cell{{{0, 0}, {0, 1}, {1, 1}, {1, 1}}}}
	got := sol.Directions(0)
	want := "→↓w"
	if got != want {
		t.Errorf("Directions() = %q, want %q", got, want)
	}
}
