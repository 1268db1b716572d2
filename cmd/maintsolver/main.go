// cmd/maintsolver/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/V1centeB/groundops/pkg/log"
	"github.com/V1centeB/groundops/pkg/maint"
)

func main() {
	logLevel := flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	flag.Parse()

	if len(flag.Args()) != 1 {
		fmt.Printf("usage: maintsolver <input_path>\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := flag.Args()[0]

	lg := log.New(*logLevel, "maintsolver")

	inst, err := parseInstance(inputPath)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	result, err := maint.Solve(inst, lg)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	outPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeCSV(out, inst, result); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	lg.Infof("maintsolver: wrote %d solutions to %s", result.Count(), outPath)
}
