// pkg/taxi/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package taxi

import "errors"

var (
	ErrEmptyMap          = errors.New("taxi: map has no rows")
	ErrNoAgents          = errors.New("taxi: no agents supplied")
	ErrStartOutOfBounds  = errors.New("taxi: agent start cell out of bounds")
	ErrGoalOutOfBounds   = errors.New("taxi: agent goal cell out of bounds")
	ErrStartBlocked      = errors.New("taxi: agent start cell is blocked")
	ErrGoalBlocked       = errors.New("taxi: agent goal cell is blocked")
	ErrInvalidHeuristic  = errors.New("taxi: invalid heuristic number, expected 1 or 2")
	ErrNegativeGInternal = errors.New("taxi: internal invariant violation: negative g")
)
