// cmd/maintsolver/input.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/V1centeB/groundops/pkg/maint"
)

// parseInstance reads the MAINT input file format from spec.md §6.1:
// time_slots, grid dimensions (informational), three position lines,
// then one aircraft per line. Parsing lives here, outside pkg/maint,
// because the solver core only consumes already-structured Instance
// values.
func parseInstance(path string) (*maint.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) < 5 {
		return nil, fmt.Errorf("maint input: expected at least 5 non-empty lines, got %d", len(lines))
	}

	ts, err := strconv.Atoi(lines[0])
	if err != nil {
		return nil, fmt.Errorf("maint input: time_slots: %w", err)
	}
	// lines[1] is RxC grid dimensions, informational only (spec.md §6.1).

	std, err := parsePositionLine(lines[2])
	if err != nil {
		return nil, fmt.Errorf("maint input: STD line: %w", err)
	}
	spc, err := parsePositionLine(lines[3])
	if err != nil {
		return nil, fmt.Errorf("maint input: SPC line: %w", err)
	}
	prk, err := parsePositionLine(lines[4])
	if err != nil {
		return nil, fmt.Errorf("maint input: PRK line: %w", err)
	}

	var aircraft []maint.Aircraft
	for _, line := range lines[5:] {
		a, err := parseAircraftLine(line)
		if err != nil {
			return nil, fmt.Errorf("maint input: aircraft line %q: %w", line, err)
		}
		aircraft = append(aircraft, a)
	}

	return &maint.Instance{
		TimeSlots: ts,
		STD:       std,
		SPC:       spc,
		PRK:       prk,
		Aircraft:  aircraft,
	}, nil
}

// parsePositionLine parses a line of the form "<label>: (r,c) (r,c) ..."
func parsePositionLine(line string) ([]maint.Cell, error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("missing ':' label separator")
	}
	var cells []maint.Cell
	for _, tok := range strings.Fields(parts[1]) {
		c, err := parseCell(tok)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}

// parseCell parses a "(r,c)" token.
func parseCell(tok string) (maint.Cell, error) {
	tok = strings.TrimSpace(tok)
	tok = strings.TrimPrefix(tok, "(")
	tok = strings.TrimSuffix(tok, ")")
	rc := strings.Split(tok, ",")
	if len(rc) != 2 {
		return maint.Cell{}, fmt.Errorf("malformed cell %q", tok)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rc[0]))
	if err != nil {
		return maint.Cell{}, err
	}
	c, err := strconv.Atoi(strings.TrimSpace(rc[1]))
	if err != nil {
		return maint.Cell{}, err
	}
	return maint.Cell{Row: r, Col: c}, nil
}

// parseAircraftLine parses "id-kind-order-t1-t2".
func parseAircraftLine(line string) (maint.Aircraft, error) {
	fields := strings.Split(line, "-")
	if len(fields) != 5 {
		return maint.Aircraft{}, fmt.Errorf("expected 5 hyphen-separated fields, got %d", len(fields))
	}
	var kind maint.AircraftKind
	switch fields[1] {
	case "STD":
		kind = maint.KindSTD
	case "JMB":
		kind = maint.KindJMB
	default:
		return maint.Aircraft{}, fmt.Errorf("unknown kind %q", fields[1])
	}
	var strictOrder bool
	switch fields[2] {
	case "T":
		strictOrder = true
	case "F":
		strictOrder = false
	default:
		return maint.Aircraft{}, fmt.Errorf("unknown order flag %q", fields[2])
	}
	t1, err := strconv.Atoi(fields[3])
	if err != nil {
		return maint.Aircraft{}, fmt.Errorf("t1: %w", err)
	}
	t2, err := strconv.Atoi(fields[4])
	if err != nil {
		return maint.Aircraft{}, fmt.Errorf("t2: %w", err)
	}
	return maint.Aircraft{
		ID:          fields[0],
		Kind:        kind,
		StrictOrder: strictOrder,
		T1Count:     t1,
		T2Count:     t2,
	}, nil
}
