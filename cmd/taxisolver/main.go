// cmd/taxisolver/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/V1centeB/groundops/pkg/log"
	"github.com/V1centeB/groundops/pkg/taxi"
)

func main() {
	logLevel := flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	flag.Parse()

	if len(flag.Args()) != 2 {
		fmt.Printf("usage: taxisolver <map_path> <heuristic_num={1,2}>\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	mapPath := flag.Args()[0]
	heuristicNum, err := strconv.Atoi(flag.Args()[1])
	if err != nil || (heuristicNum != 1 && heuristicNum != 2) {
		fmt.Printf("%v: got %q\n", taxi.ErrInvalidHeuristic, flag.Args()[1])
		os.Exit(1)
	}

	lg := log.New(*logLevel, "taxisolver")

	m, agents, err := parseMap(mapPath)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	var h taxi.Heuristic
	switch heuristicNum {
	case 1:
		h = taxi.ManhattanHeuristic{}
	case 2:
		h2, err := taxi.BuildShortestPathHeuristic(m)
		if err != nil {
			fmt.Printf("%v\n", err)
			os.Exit(1)
		}
		h = h2
	}

	start := time.Now()
	sol, err := taxi.Search(m, agents, h, lg)
	elapsed := time.Since(start)
	if err != nil {
		// Infeasibility is reported, not fatal (spec.md §7).
		fmt.Printf("%v\n", err)
		os.Exit(0)
	}

	base := strings.TrimSuffix(filepath.Base(mapPath), filepath.Ext(mapPath))
	prefix := filepath.Join(filepath.Dir(mapPath), fmt.Sprintf("%s-%d", base, heuristicNum))

	outFile, err := os.Create(prefix + ".output")
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()
	if err := writeOutput(outFile, sol); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	statFile, err := os.Create(prefix + ".stat")
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
	defer statFile.Close()
	if err := writeStat(statFile, sol, elapsed); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	lg.Infof("taxisolver: makespan=%d nodes_expanded=%d", sol.Makespan, sol.NodesExpanded)
}
