// cmd/maintsolver/output.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io"

	"github.com/V1centeB/groundops/pkg/maint"
)

// maxRenderedSolutions is the block cap spec.md §4.1/§6.2 describe ("it
// may truncate to the first K (typically 100)"), matching the original
// Python solver's solutions[:100] slice in its output writer.
const maxRenderedSolutions = 100

// writeCSV renders a solve Result in the CSV-like format spec.md §6.2
// describes: a header with the total (untruncated) solution count,
// followed by up to maxRenderedSolutions "Solución <i>:" blocks, one
// line per aircraft.
func writeCSV(w io.Writer, inst *maint.Instance, r *maint.Result) error {
	if _, err := fmt.Fprintf(w, "N. Sol: %d\n", r.Count()); err != nil {
		return err
	}

	for i, sol := range r.Truncate(maxRenderedSolutions) {
		if _, err := fmt.Fprintf(w, "Solución %d:\n", i+1); err != nil {
			return err
		}
		for _, a := range inst.Aircraft {
			positions := sol[a.ID]
			strs := make([]string, len(positions))
			for j, p := range positions {
				strs[j] = p.String()
			}
			line := fmt.Sprintf("%s-%s-%s-%d-%d: ", a.ID, a.Kind, orderFlag(a.StrictOrder), a.T1Count, a.T2Count)
			for j, s := range strs {
				if j > 0 {
					line += ", "
				}
				line += s
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func orderFlag(strict bool) string {
	if strict {
		return "T"
	}
	return "F"
}
