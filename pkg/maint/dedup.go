// pkg/maint/dedup.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package maint

import (
	"sort"

	"github.com/mitchellh/hashstructure/v2"
)

// canonicalEntry is one aircraft's contribution to a canonical form: its
// id paired with the positions it occupies across the horizon, in slot
// order (spec.md §4.1 "Deduplication").
type canonicalEntry struct {
	AircraftID string
	Positions  []Position
}

// canonicalForm is the deduplication key for an Assignment: the tuple,
// sorted by aircraft id, of each aircraft's per-slot position sequence.
//
// Only the aircraft dimension is sorted here, not each aircraft's own
// position sequence. Assignment is a Go map, whose key iteration order
// is meaningless, so aircraft id needs normalizing before two
// Assignments can be compared; but each aircraft's own Positions slice
// is already indexed by slot, a real, meaningful order (which task the
// aircraft does first vs. second), not an iteration artifact — two
// assignments differing only in which slot holds which position are
// genuinely different plans, not the same plan observed twice. This
// reading is what spec.md §8 scenario 1 requires numerically: see
// DESIGN.md's note on reconciling this with the spec's prose.
type canonicalForm struct {
	Entries []canonicalEntry
}

func canonicalize(a Assignment) canonicalForm {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]canonicalEntry, 0, len(ids))
	for _, id := range ids {
		positions := append([]Position(nil), a[id]...)
		entries = append(entries, canonicalEntry{AircraftID: id, Positions: positions})
	}
	return canonicalForm{Entries: entries}
}

// deduper drops Assignments whose canonical form has already been seen,
// keeping the first occurrence (spec.md §4.1). It buckets by a structural
// hash of the canonical form (via mitchellh/hashstructure, the same
// library nomad uses for scheduler-plan dedup) so checking a new
// assignment against everything already kept is O(1) expected instead of
// O(n) per insertion; an exact equality check within the bucket guards
// against hash collisions.
type deduper struct {
	buckets map[uint64][]dedupEntry
}

type dedupEntry struct {
	form       canonicalForm
	assignment Assignment
}

func newDeduper() *deduper {
	return &deduper{buckets: make(map[uint64][]dedupEntry)}
}

// Insert reports whether a is new (and, if so, records it); duplicates of
// an already-kept canonical form are dropped.
func (d *deduper) Insert(a Assignment) bool {
	form := canonicalize(a)
	h, err := hashstructure.Hash(form, hashstructure.FormatV2, nil)
	if err != nil {
		// Hashing a plain struct of strings/ints cannot fail in practice;
		// an error here indicates a bug in the canonical form, not bad
		// input, so treat it the way spec.md §7 treats internal
		// invariant violations.
		panic("maint: failed to hash canonical form: " + err.Error())
	}

	for _, existing := range d.buckets[h] {
		if canonicalEqual(existing.form, form) {
			return false
		}
	}
	d.buckets[h] = append(d.buckets[h], dedupEntry{form: form, assignment: a})
	return true
}

func canonicalEqual(a, b canonicalForm) bool {
	if len(a.Entries) != len(b.Entries) {
		return false
	}
	for i := range a.Entries {
		ea, eb := a.Entries[i], b.Entries[i]
		if ea.AircraftID != eb.AircraftID || len(ea.Positions) != len(eb.Positions) {
			return false
		}
		for j := range ea.Positions {
			if ea.Positions[j] != eb.Positions[j] {
				return false
			}
		}
	}
	return true
}
