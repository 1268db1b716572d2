// pkg/taxi/astar.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package taxi

import (
	"container/heap"
	"fmt"

	"github.com/V1centeB/groundops/pkg/log"
)

// Solution is the outcome of one joint-state A* search: a per-agent
// sequence of cells (the trajectory) and the search statistics spec.md
// §6.2's .stat output reports.
type Solution struct {
	Paths         [][]Cell // Paths[agentIndex] = start..goal inclusive
	Makespan      int      // number of joint steps, i.e. len(Paths[i])-1
	InitialH      int
	NodesExpanded int
}

// frontier is a binary min-heap ordered by (F, H, insertion order), the
// tie-break chain spec.md §4.2 specifies: lower f first, then lower h
// (prefer the node closer to the goal), then FIFO among exact ties so
// search is deterministic and reproducible across runs.
type frontier struct {
	nodes []*SearchNode
	seq   []int
	next  int // insertion number handed to the next pushed node
}

func (f *frontier) Len() int { return len(f.nodes) }
func (f *frontier) Less(i, j int) bool {
	ni, nj := f.nodes[i], f.nodes[j]
	if ni.F() != nj.F() {
		return ni.F() < nj.F()
	}
	if ni.H != nj.H {
		return ni.H < nj.H
	}
	return f.seq[i] < f.seq[j]
}
func (f *frontier) Swap(i, j int) {
	f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i]
	f.seq[i], f.seq[j] = f.seq[j], f.seq[i]
}
func (f *frontier) Push(x any) {
	f.nodes = append(f.nodes, x.(*SearchNode))
	f.seq = append(f.seq, f.next)
	f.next++
}
func (f *frontier) Pop() any {
	n := len(f.nodes)
	node := f.nodes[n-1]
	f.nodes = f.nodes[:n-1]
	f.seq = f.seq[:n-1]
	return node
}

// Search runs joint-state A* from every agent's start cell to its goal
// cell simultaneously, using h as the heuristic (spec.md §4.2). It
// returns the optimal-makespan joint path, or an error if no path exists
// (spec.md §7: infeasibility is reported, not panicked).
func Search(m *Map, agents []Agent, h Heuristic, lg *log.Logger) (*Solution, error) {
	if err := validateInstance(m, agents); err != nil {
		return nil, err
	}

	start := make(JointState, len(agents))
	goals := make([]Cell, len(agents))
	for i, a := range agents {
		start[i] = a.Start
		goals[i] = a.Goal
	}

	root := &SearchNode{State: start, G: 0, H: h.H(start, goals)}
	initialH := root.H

	fr := &frontier{}
	heap.Init(fr)
	heap.Push(fr, root)

	// best[key] is the lowest g* confirmed for that state; a state is
	// re-expanded only if reached again with a strictly lower g (spec.md
	// §4.2's closed-set policy).
	best := map[string]int{start.key(): 0}

	nodesExpanded := 0
	for fr.Len() > 0 {
		node := heap.Pop(fr).(*SearchNode)
		key := node.State.key()
		if g, ok := best[key]; ok && node.G > g {
			continue // stale entry superseded by a cheaper path to the same state
		}
		nodesExpanded++

		if allAtGoal(node.State, goals) {
			if lg != nil {
				lg.Infof("taxi: search succeeded, makespan=%d nodes_expanded=%d", node.G, nodesExpanded)
			}
			return reconstruct(node, initialH, nodesExpanded), nil
		}

		for _, c := range expand(node.State, goals, m) {
			ckey := c.state.key()
			g := node.G + 1
			if bg, ok := best[ckey]; ok && bg <= g {
				continue
			}
			best[ckey] = g
			child := &SearchNode{
				State:  c.state,
				G:      g,
				H:      h.H(c.state, goals),
				Parent: node,
				Move:   c.move,
			}
			heap.Push(fr, child)
		}
	}

	if lg != nil {
		lg.Warnf("taxi: search exhausted frontier without reaching the goal, nodes_expanded=%d", nodesExpanded)
	}
	return nil, fmt.Errorf("taxi: no joint path reaches every goal")
}

func allAtGoal(state JointState, goals []Cell) bool {
	for i, c := range state {
		if c != goals[i] {
			return false
		}
	}
	return true
}

func validateInstance(m *Map, agents []Agent) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return ErrEmptyMap
	}
	if len(agents) == 0 {
		return ErrNoAgents
	}
	for _, a := range agents {
		if !m.InBounds(a.Start) {
			return ErrStartOutOfBounds
		}
		if !m.InBounds(a.Goal) {
			return ErrGoalOutOfBounds
		}
		if m.At(a.Start) == Blocked {
			return ErrStartBlocked
		}
		if m.At(a.Goal) == Blocked {
			return ErrGoalBlocked
		}
	}
	return nil
}
