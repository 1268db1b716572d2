// cmd/taxisolver/input.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/V1centeB/groundops/pkg/taxi"
)

// parseMap reads the TAXI input file format from spec.md §6.3: agent
// count, one start/goal line per agent, then the map rows. Parsing
// lives here, outside pkg/taxi, because the solver core only consumes
// already-structured Map and Agent values.
func parseMap(path string) (*taxi.Map, []taxi.Agent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("taxi input: empty file")
	}

	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, nil, fmt.Errorf("taxi input: agent count: %w", err)
	}
	if len(lines) < 1+n {
		return nil, nil, fmt.Errorf("taxi input: expected %d agent lines, got %d", n, len(lines)-1)
	}

	agents := make([]taxi.Agent, n)
	for i := 0; i < n; i++ {
		toks := strings.Fields(lines[1+i])
		if len(toks) != 2 {
			return nil, nil, fmt.Errorf("taxi input: agent line %q: expected start and goal tokens", lines[1+i])
		}
		start, err := parseCell(toks[0])
		if err != nil {
			return nil, nil, fmt.Errorf("taxi input: agent %d start: %w", i, err)
		}
		goal, err := parseCell(toks[1])
		if err != nil {
			return nil, nil, fmt.Errorf("taxi input: agent %d goal: %w", i, err)
		}
		agents[i] = taxi.Agent{Start: start, Goal: goal}
	}

	var grid [][]taxi.CellKind
	for _, row := range lines[1+n:] {
		cells := strings.Split(row, ";")
		kinds := make([]taxi.CellKind, len(cells))
		for j, c := range cells {
			kinds[j] = cellKind(strings.TrimSpace(c))
		}
		grid = append(grid, kinds)
	}

	return &taxi.Map{Grid: grid}, agents, nil
}

func cellKind(sym string) taxi.CellKind {
	switch sym {
	case "B", "G":
		return taxi.Blocked
	case "A":
		return taxi.Yellow
	default:
		return taxi.Open
	}
}

func parseCell(tok string) (taxi.Cell, error) {
	tok = strings.TrimSpace(tok)
	tok = strings.TrimPrefix(tok, "(")
	tok = strings.TrimSuffix(tok, ")")
	rc := strings.Split(tok, ",")
	if len(rc) != 2 {
		return taxi.Cell{}, fmt.Errorf("malformed cell %q", tok)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rc[0]))
	if err != nil {
		return taxi.Cell{}, err
	}
	c, err := strconv.Atoi(strings.TrimSpace(rc[1]))
	if err != nil {
		return taxi.Cell{}, err
	}
	return taxi.Cell{Row: r, Col: c}, nil
}
