// pkg/taxi/successors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package taxi

// candidate is one joint move together with the state it produces.
type candidate struct {
	state JointState
	move  []Move
}

// expand generates every valid joint-move successor of state, given the
// fleet's goals and the map, per spec.md §4.2's transition validity
// rules. At least one agent makes a non-WAIT move in the returned
// successors unless no such joint move is valid, in which case a single
// pure-WAIT successor is returned as the degenerate escape hatch spec.md
// §4.2 describes.
func expand(state JointState, goals []Cell, m *Map) []candidate {
	n := len(state)
	perAgentMoves := make([][]Move, n)
	for i := range state {
		if state[i] == goals[i] {
			// "Parked at goal" is mandatory and pre-empts other moves.
			perAgentMoves[i] = []Move{MoveWait}
		} else {
			perAgentMoves[i] = Moves[:]
		}
	}

	var valid, productive []candidate
	forEachCombo(perAgentMoves, func(moves []Move) {
		target := make(JointState, n)
		for i, mv := range moves {
			target[i] = mv.Apply(state[i])
		}
		if !transitionValid(state, target, m) {
			return
		}
		c := candidate{state: target, move: append([]Move(nil), moves...)}
		valid = append(valid, c)
		if !allWait(state, target) {
			productive = append(productive, c)
		}
	})

	if len(productive) > 0 {
		return productive
	}
	if len(valid) > 0 {
		return valid
	}

	// Degenerate fallback: no joint move (not even pure-WAIT) passed the
	// wait-on-yellow filter, which can only happen if some agent is
	// already sitting on a yellow cell. Emit a forced pure-WAIT step so
	// search always has somewhere to go; this bypasses wait-on-yellow by
	// construction, matching spec.md §4.2's "implementer's escape hatch".
	waitState := append(JointState(nil), state...)
	waitMoves := make([]Move, n)
	for i := range waitMoves {
		waitMoves[i] = MoveWait
	}
	return []candidate{{state: waitState, move: waitMoves}}
}

func allWait(state, target JointState) bool {
	return state.Equal(target)
}

// transitionValid checks every per-agent and pairwise rule in spec.md
// §4.2 except the "at least one non-WAIT move" rule, which expand
// enforces by filtering candidates afterward.
func transitionValid(state, target JointState, m *Map) bool {
	n := len(state)
	for i := 0; i < n; i++ {
		if !m.Traversable(target[i]) {
			return false
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if target[i] == target[j] {
				return false // vertex conflict
			}
			if target[i] == state[j] && target[j] == state[i] {
				return false // edge conflict (swap)
			}
		}
	}
	for i := 0; i < n; i++ {
		if target[i] == state[i] && m.At(target[i]) == Yellow {
			return false // wait-on-yellow
		}
	}
	return true
}

// forEachCombo calls fn once for every combination in the Cartesian
// product of options, one slice element chosen per agent.
func forEachCombo(options [][]Move, fn func([]Move)) {
	n := len(options)
	chosen := make([]Move, n)
	var rec func(i int)
	rec = func(i int) {
		if i == n {
			fn(chosen)
			return
		}
		for _, mv := range options[i] {
			chosen[i] = mv
			rec(i + 1)
		}
	}
	rec(0)
}
