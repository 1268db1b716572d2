// pkg/maint/maint_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package maint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustSolve(t *testing.T, inst *Instance) *Result {
	t.Helper()
	r, err := Solve(inst, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return r
}

// Scenario 1 (spec.md §8): single non-jumbo aircraft, 2 slots, one
// position of each kind; every single-occupancy assignment is legal, so
// the count is (|STD|+|SPC|+|PRK|)^2 = 9.
func TestSingleAircraftCountsAllCombinations(t *testing.T) {
	inst := &Instance{
		TimeSlots: 2,
		STD:       []Cell{{0, 0}},
		SPC:       []Cell{{0, 1}},
		PRK:       []Cell{{1, 0}},
		Aircraft: []Aircraft{
			{ID: "1", Kind: KindSTD, StrictOrder: false, T1Count: 0, T2Count: 0},
		},
	}
	r := mustSolve(t, inst)
	if got, want := r.Count(), 9; got != want {
		t.Errorf("Count() = %d, want %d", got, want)
	}
}

// Scenario 2 (spec.md §8): two JMB aircraft forced to the same position
// in a single slot must be infeasible.
func TestJumboColocationForbidden(t *testing.T) {
	inst := &Instance{
		TimeSlots: 1,
		STD:       []Cell{{0, 0}},
		Aircraft: []Aircraft{
			{ID: "1", Kind: KindJMB, T1Count: 1, T2Count: 0},
			{ID: "2", Kind: KindJMB, T1Count: 1, T2Count: 0},
		},
	}
	r := mustSolve(t, inst)
	if got := r.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

// Scenario 3 (spec.md §8): strict-order aircraft with t2=1, t1=1 over 2
// slots must land in SPC at slot 0 and STD at slot 1.
func TestStrictOrderPrefix(t *testing.T) {
	inst := &Instance{
		TimeSlots: 2,
		STD:       []Cell{{0, 0}, {5, 5}},
		SPC:       []Cell{{0, 1}, {6, 6}},
		Aircraft: []Aircraft{
			{ID: "1", Kind: KindSTD, StrictOrder: true, T1Count: 1, T2Count: 1},
			{ID: "2", Kind: KindSTD, StrictOrder: true, T1Count: 1, T2Count: 1},
		},
	}
	r := mustSolve(t, inst)
	if r.Count() == 0 {
		t.Fatal("expected at least one solution")
	}
	for _, sol := range r.Solutions {
		for id, positions := range sol {
			if positions[0].Kind != SPC {
				t.Errorf("aircraft %s slot 0 = %v, want SPC", id, positions[0])
			}
			if positions[1].Kind != STD {
				t.Errorf("aircraft %s slot 1 = %v, want STD", id, positions[1])
			}
		}
	}
}

// TestInfeasibleWhenTasksExceedHorizon checks that t1+t2 > time_slots is
// rejected by validate() as a structural input error, returned by Solve
// before search even begins (not reported as a zero-solution Result).
func TestInfeasibleWhenTasksExceedHorizon(t *testing.T) {
	inst := &Instance{
		TimeSlots: 1,
		STD:       []Cell{{0, 0}},
		SPC:       []Cell{{0, 1}},
		Aircraft: []Aircraft{
			{ID: "1", T1Count: 1, T2Count: 1},
		},
	}
	if _, err := Solve(inst, nil); err == nil {
		t.Fatal("expected a validation error for t1+t2 > time_slots")
	}
}

// TestUniversalInvariants checks every solution of a moderately-sized
// instance against the invariants enumerated in spec.md §8.
func TestUniversalInvariants(t *testing.T) {
	inst := &Instance{
		TimeSlots: 2,
		STD:       []Cell{{0, 0}, {0, 2}},
		SPC:       []Cell{{2, 0}, {2, 2}},
		PRK:       []Cell{{4, 0}, {4, 2}},
		Aircraft: []Aircraft{
			{ID: "1", Kind: KindJMB, T1Count: 0, T2Count: 0},
			{ID: "2", Kind: KindSTD, T1Count: 0, T2Count: 0},
			{ID: "3", Kind: KindSTD, T1Count: 1, T2Count: 0},
		},
	}
	r := mustSolve(t, inst)
	if r.Count() == 0 {
		t.Fatal("expected feasible solutions")
	}

	for _, sol := range r.Solutions {
		for tt := 0; tt < inst.TimeSlots; tt++ {
			occ := make([]occupant, len(inst.Aircraft))
			for i, a := range inst.Aircraft {
				occ[i] = occupant{AircraftID: a.ID, Position: sol[a.ID][tt], Kind: a.Kind}
			}
			if !capacityOK(occ) {
				t.Errorf("capacity violated at slot %d: %+v", tt, occ)
			}
			if !maneuverabilityOK(occ) {
				t.Errorf("maneuverability violated at slot %d: %+v", tt, occ)
			}
			if !jumboSeparationOK(occ) {
				t.Errorf("jumbo separation violated at slot %d: %+v", tt, occ)
			}
		}
	}
}

// TestDedupIdempotence: re-canonicalizing an assignment yields the same
// form; two assignments whose aircraft occupy different positions at the
// same slot are not considered equal; and re-inserting an assignment with
// identical per-slot content (but a freshly built map/slice, as a
// different search leaf might produce) is recognized as a duplicate.
func TestDedupIdempotence(t *testing.T) {
	a := Assignment{
		"1": {{Cell: Cell{0, 0}, Kind: STD}, {Cell: Cell{1, 0}, Kind: PRK}},
	}
	f1 := canonicalize(a)
	f2 := canonicalize(a)
	if diff := cmp.Diff(f1, f2); diff != "" {
		t.Errorf("canonicalize not idempotent (-first +second):\n%s", diff)
	}

	b := Assignment{
		"1": {{Cell: Cell{1, 0}, Kind: PRK}, {Cell: Cell{2, 2}, Kind: STD}},
	}
	if canonicalEqual(f1, canonicalize(b)) {
		t.Error("expected distinct canonical forms for different per-slot assignments")
	}

	// Reversing which slot holds which position is a genuinely different
	// plan (spec.md §8 scenario 1 requires per-slot assignments to count
	// separately, not collapse by multiset); it must not be treated as a
	// duplicate of a.
	reversed := Assignment{
		"1": {{Cell: Cell{1, 0}, Kind: PRK}, {Cell: Cell{0, 0}, Kind: STD}},
	}
	if canonicalEqual(f1, canonicalize(reversed)) {
		t.Error("expected reversing per-slot order to produce a distinct canonical form")
	}

	d := newDeduper()
	if !d.Insert(a) {
		t.Error("first insert should report new")
	}
	// A freshly built Assignment with identical per-slot content is a
	// genuine duplicate even though it's a distinct Go value.
	rebuilt := Assignment{
		"1": {{Cell: Cell{0, 0}, Kind: STD}, {Cell: Cell{1, 0}, Kind: PRK}},
	}
	if d.Insert(rebuilt) {
		t.Error("identical rebuilt assignment should not be treated as new")
	}
	if !d.Insert(reversed) {
		t.Error("an assignment with positions in a different slot order should be new")
	}
}

// TestEnumerationCompleteness compares MAINT's deduplicated solution
// count against a brute-force enumerator on a tiny instance, after
// spec.md §8's "Enumeration completeness" property. Only the counts are
// compared, not the solutions themselves.
func TestEnumerationCompleteness(t *testing.T) {
	inst := &Instance{
		TimeSlots: 2,
		STD:       []Cell{{0, 0}},
		SPC:       []Cell{{0, 5}},
		PRK:       []Cell{{5, 0}, {5, 1}},
		Aircraft: []Aircraft{
			{ID: "1", Kind: KindSTD, T1Count: 0, T2Count: 0},
			{ID: "2", Kind: KindSTD, T1Count: 0, T2Count: 0},
		},
	}
	got := mustSolve(t, inst)

	ps := newPositionSets(inst)
	all := ps.allPositions()
	cs := buildSlotConstraints(false)

	var brute []Assignment
	dd := newDeduper()
	n := len(inst.Aircraft)
	cur := make([][]Position, n)
	for i := range cur {
		cur[i] = make([]Position, inst.TimeSlots)
	}
	var assignSlot func(t int)
	var assignAircraft func(t, i int)
	assignAircraft = func(t, i int) {
		if i == n {
			occ := make([]occupant, n)
			for k, a := range inst.Aircraft {
				occ[k] = occupant{AircraftID: a.ID, Position: cur[k][t], Kind: a.Kind}
			}
			if !checkSlot(cs, occ) {
				return
			}
			if t+1 == inst.TimeSlots {
				a := make(Assignment, n)
				for k, ac := range inst.Aircraft {
					positions := make([]Position, inst.TimeSlots)
					copy(positions, cur[k])
					a[ac.ID] = positions
				}
				if dd.Insert(a) {
					brute = append(brute, a)
				}
				return
			}
			assignSlot(t + 1)
			return
		}
		for _, p := range all {
			cur[i][t] = p
			assignAircraft(t, i+1)
		}
	}
	assignSlot = func(t int) { assignAircraft(t, 0) }
	assignSlot(0)

	if got.Count() != len(brute) {
		t.Fatalf("got %d solutions, brute force found %d", got.Count(), len(brute))
	}
}
