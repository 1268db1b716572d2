// pkg/taxi/path.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package taxi

import "strings"

// reconstruct walks goal's parent chain back to the root and builds the
// per-agent cell trajectories plus the search statistics reported in
// spec.md §6.2's .stat output.
func reconstruct(goal *SearchNode, initialH, nodesExpanded int) *Solution {
	var chain []*SearchNode
	for n := goal; n != nil; n = n.Parent {
		chain = append(chain, n)
	}
	// chain is goal..root; reverse to root..goal.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	numAgents := len(goal.State)
	paths := make([][]Cell, numAgents)
	for i := range paths {
		paths[i] = make([]Cell, len(chain))
		for t, n := range chain {
			paths[i][t] = n.State[i]
		}
	}

	return &Solution{
		Paths:         paths,
		Makespan:      len(chain) - 1,
		InitialH:      initialH,
		NodesExpanded: nodesExpanded,
	}
}

// Directions renders agent i's per-step moves as the arrow glyphs
// spec.md §4.2 and the original solver's traducir_camino both use
// (↑ ↓ ← → for N/S/W/E, w for WAIT), one glyph per joint step.
func (s *Solution) Directions(agent int) string {
	path := s.Paths[agent]
	var b strings.Builder
	for t := 1; t < len(path); t++ {
		b.WriteString(moveBetween(path[t-1], path[t]).Arrow())
	}
	return b.String()
}

func moveBetween(from, to Cell) Move {
	return Move{DR: to.Row - from.Row, DC: to.Col - from.Col}
}
