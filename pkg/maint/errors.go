// pkg/maint/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package maint

import "errors"

var (
	ErrNoTimeSlots        = errors.New("maint: instance has zero time slots")
	ErrDuplicateAircraft  = errors.New("maint: duplicate aircraft id")
	ErrNegativeTaskCount  = errors.New("maint: negative task count")
	ErrTaskCountExceedsTS = errors.New("maint: t1_count+t2_count exceeds time_slots")
	ErrOverlappingSets    = errors.New("maint: STD/SPC/PRK position sets are not disjoint")
)
