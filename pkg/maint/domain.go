// pkg/maint/domain.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package maint

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"

	"github.com/V1centeB/groundops/pkg/util"
)

// positionSets groups the three disjoint kind-sets of an Instance as
// hashicorp/go-set Sets, the collection type this repo uses throughout
// for "small closed family, membership-tested" groups of Cells/Positions
// (spec.md §9's preference for uniform collection handling over ad hoc
// map[T]struct{} bookkeeping).
type positionSets struct {
	std, spc, prk *set.Set[Cell]
}

func newPositionSets(inst *Instance) *positionSets {
	return &positionSets{
		std: set.From(inst.STD),
		spc: set.From(inst.SPC),
		prk: set.From(inst.PRK),
	}
}

// allPositions returns every Position in the instance, kind-tagged.
func (p *positionSets) allPositions() []Position {
	out := make([]Position, 0, p.std.Size()+p.spc.Size()+p.prk.Size())
	for _, c := range p.std.Slice() {
		out = append(out, Position{Cell: c, Kind: STD})
	}
	for _, c := range p.spc.Slice() {
		out = append(out, Position{Cell: c, Kind: SPC})
	}
	for _, c := range p.prk.Slice() {
		out = append(out, Position{Cell: c, Kind: PRK})
	}
	return out
}

func (p *positionSets) ofKind(k PositionKind) []Position {
	var cells []Cell
	switch k {
	case STD:
		cells = p.std.Slice()
	case SPC:
		cells = p.spc.Slice()
	case PRK:
		cells = p.prk.Slice()
	}
	out := make([]Position, len(cells))
	for i, c := range cells {
		out[i] = Position{Cell: c, Kind: k}
	}
	return out
}

// validate checks the structural preconditions of an Instance that are
// independent of the per-slot constraints: non-negative task counts,
// disjoint position sets, and a non-empty horizon. Multiple problems are
// accumulated via util.ErrorLogger rather than failing on the first one,
// matching the input-format error handling the rest of the repo uses.
func validate(inst *Instance) error {
	var e util.ErrorLogger
	e.Push("instance")

	if inst.TimeSlots <= 0 {
		e.Error(ErrNoTimeSlots)
	}

	std := set.From(inst.STD)
	spc := set.From(inst.SPC)
	prk := set.From(inst.PRK)
	if std.Intersect(spc).Size() > 0 || std.Intersect(prk).Size() > 0 || spc.Intersect(prk).Size() > 0 {
		e.Error(ErrOverlappingSets)
	}

	seen := set.New[string](len(inst.Aircraft))
	for _, a := range inst.Aircraft {
		e.Push(fmt.Sprintf("aircraft %s", a.ID))
		if !seen.Insert(a.ID) {
			e.Error(ErrDuplicateAircraft)
		}
		if a.T1Count < 0 || a.T2Count < 0 {
			e.Error(ErrNegativeTaskCount)
		}
		if a.T1Count+a.T2Count > inst.TimeSlots {
			e.Error(ErrTaskCountExceedsTS)
		}
		e.Pop()
	}
	e.Pop()

	return e.AsError()
}

// domainForAircraft computes the per-slot domain for one aircraft: the
// strict task-placement prefix from spec.md §4.1 (SPC for the first
// t2_count slots, STD for the next t1_count, PRK for the remainder). This
// layout is applied regardless of Aircraft.StrictOrder; see DESIGN.md for
// why the spec's "strict_order=false" branch collapses into the same
// prefix under the normative, deterministic reading of §4.1.
//
// An aircraft with no tasks at all (t1_count = t2_count = 0) never enters
// that prefix and keeps the unconstrained default domain, STD ∪ SPC ∪
// PRK, at every slot: there is nothing to park after finishing, since
// nothing was ever scheduled. This is what spec.md §8's scenario 1
// requires (a taskless aircraft's per-slot domain spans all three
// position kinds, not PRK alone); see DESIGN.md.
//
// A zero-length entry at index t means the domain at that slot is empty, which
// signals instance-level infeasibility (spec.md §4.1 "Failure semantics").
func domainForAircraft(a Aircraft, ts int, ps *positionSets) [][]Position {
	domains := make([][]Position, ts)

	if a.T1Count+a.T2Count == 0 {
		all := ps.allPositions()
		for t := 0; t < ts; t++ {
			domains[t] = all
		}
		return domains
	}

	spcEnd := a.T2Count
	stdEnd := spcEnd + a.T1Count

	for t := 0; t < ts; t++ {
		switch {
		case t < spcEnd:
			domains[t] = ps.ofKind(SPC)
		case t < stdEnd:
			domains[t] = ps.ofKind(STD)
		default:
			domains[t] = ps.ofKind(PRK)
		}
	}
	return domains
}
