// pkg/maint/search.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package maint

import (
	"github.com/V1centeB/groundops/pkg/log"
)

// Result is the outcome of a MAINT solve: the deduplicated set of
// feasible assignments, in first-occurrence order.
type Result struct {
	Solutions []Assignment
}

// Count is the total number of distinct (post-dedup) solutions, i.e. the
// count that spec.md §6.2's "N. Sol:" header reports regardless of how
// many solution blocks the caller chooses to render.
func (r *Result) Count() int { return len(r.Solutions) }

// Truncate returns the first k solutions (or all of them if there are
// fewer than k), for callers that render only a bounded number of
// solution blocks while still reporting the full Count.
func (r *Result) Truncate(k int) []Assignment {
	if k < 0 || k > len(r.Solutions) {
		k = len(r.Solutions)
	}
	return r.Solutions[:k]
}

// Solve enumerates every feasible MAINT assignment for inst and returns
// the deduplicated result. Search never fails fatally: an infeasible
// instance (including one whose unary domains collapse to empty, per
// spec.md §4.1 "Failure semantics") yields a Result with zero Solutions
// and a nil error. A non-nil error indicates malformed input (spec.md §7
// "Input-format error" / structural validation failure).
func Solve(inst *Instance, lg *log.Logger) (*Result, error) {
	if err := validate(inst); err != nil {
		return nil, err
	}

	ps := newPositionSets(inst)
	n := len(inst.Aircraft)
	domains := make([][][]Position, n)
	for i, a := range inst.Aircraft {
		domains[i] = domainForAircraft(a, inst.TimeSlots, ps)
		for t, d := range domains[i] {
			if len(d) == 0 {
				lg.Infof("maint: empty domain for aircraft %s at slot %d: infeasible", a.ID, t)
				return &Result{}, nil
			}
		}
	}

	s := &searcher{
		inst:    inst,
		domains: domains,
		cs:      buildSlotConstraints(inst.NonAdjacentAll),
		current: make([][]Position, n),
		dedup:   newDeduper(),
		lg:      lg,
	}
	for i := range s.current {
		s.current[i] = make([]Position, inst.TimeSlots)
	}

	s.recurse(0, 0)

	lg.Infof("maint: search complete, %d nodes expanded, %d distinct solutions", s.nodes, len(s.solutions))
	return &Result{Solutions: s.solutions}, nil
}

// searcher holds the mutable state of one backtracking search invocation.
// It is owned exclusively by the Solve call that created it (§5
// Concurrency & Resource Model: search state is never shared).
type searcher struct {
	inst    *Instance
	domains [][][]Position // domains[aircraft][slot]
	cs      []slotConstraint
	current [][]Position // current[aircraft][slot], filled slot-major
	dedup   *deduper
	lg      *log.Logger

	nodes     int
	solutions []Assignment
}

// recurse assigns variable X[i,t] for every aircraft i at slot t before
// moving to slot t+1 (variable ordering lexicographic by (slot,
// aircraft_index), a valid reordering of spec.md §4.1's suggested
// (aircraft_index, slot) ordering that lets a slot's global constraints
// be checked — and pruned on — as soon as that slot is fully bound,
// instead of only at a completed assignment).
func (s *searcher) recurse(t, i int) {
	s.nodes++

	if i == len(s.inst.Aircraft) {
		// Every aircraft has a value for slot t: check this slot's
		// global constraints now that they're fully determined.
		occ := s.occupantsAt(t)
		if !checkSlot(s.cs, occ) {
			return
		}
		if t+1 == s.inst.TimeSlots {
			s.recordSolution()
			return
		}
		s.recurse(t+1, 0)
		return
	}

	for _, pos := range s.domains[i][t] {
		s.current[i][t] = pos
		s.recurse(t, i+1)
	}
}

func (s *searcher) occupantsAt(t int) []occupant {
	occ := make([]occupant, len(s.inst.Aircraft))
	for i, a := range s.inst.Aircraft {
		occ[i] = occupant{AircraftID: a.ID, Position: s.current[i][t], Kind: a.Kind}
	}
	return occ
}

func (s *searcher) recordSolution() {
	a := make(Assignment, len(s.inst.Aircraft))
	for i, ac := range s.inst.Aircraft {
		positions := make([]Position, s.inst.TimeSlots)
		copy(positions, s.current[i])
		a[ac.ID] = positions
	}
	if s.dedup.Insert(a) {
		s.solutions = append(s.solutions, a)
	}
}
