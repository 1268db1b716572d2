// cmd/taxisolver/output.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/V1centeB/groundops/pkg/taxi"
)

// writeOutput renders one line per agent, "(r,c) <dir>" tokens
// whitespace-separated with the last token lacking a direction, per
// spec.md §6.4.
func writeOutput(w io.Writer, sol *taxi.Solution) error {
	for i, path := range sol.Paths {
		var line string
		for t, c := range path {
			if t > 0 {
				line += " "
			}
			line += fmt.Sprintf("(%d,%d)", c.Row, c.Col)
			if t+1 < len(path) {
				dir := moveArrow(c, path[t+1])
				line += " " + dir
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("taxi output: agent %d: %w", i, err)
		}
	}
	return nil
}

func moveArrow(from, to taxi.Cell) string {
	return taxi.Move{DR: to.Row - from.Row, DC: to.Col - from.Col}.Arrow()
}

// writeStat renders the total wall-clock time, makespan, initial
// heuristic value, and nodes expanded, per spec.md §6.4.
func writeStat(w io.Writer, sol *taxi.Solution, elapsed time.Duration) error {
	_, err := fmt.Fprintf(w, "time: %s\nmakespan: %d\ninitial_h: %d\nnodes_expanded: %d\n",
		elapsed, sol.Makespan, sol.InitialH, sol.NodesExpanded)
	return err
}
