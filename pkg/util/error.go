// pkg/util/error.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package util collects small pieces of ambient infrastructure (error
// accumulation, a generic numeric helper) shared by pkg/maint and
// pkg/taxi.
package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/V1centeB/groundops/pkg/log"
)

// ErrorLogger accumulates multiple errors encountered while validating an
// input file or instance, tracking a hierarchy of context (which line,
// which aircraft, which slot) so each reported error can be attributed.
type ErrorLogger struct {
	hierarchy []string
	errors    []string
}

func (e *ErrorLogger) Push(s string) {
	e.hierarchy = append(e.hierarchy, s)
}

func (e *ErrorLogger) Pop() {
	e.hierarchy = e.hierarchy[:len(e.hierarchy)-1]
}

func (e *ErrorLogger) ErrorString(s string, args ...interface{}) {
	e.errors = append(e.errors, strings.Join(e.hierarchy, " / ")+": "+fmt.Sprintf(s, args...))
}

func (e *ErrorLogger) Error(err error) {
	e.errors = append(e.errors, strings.Join(e.hierarchy, " / ")+": "+err.Error())
}

func (e *ErrorLogger) HaveErrors() bool {
	return len(e.errors) > 0
}

func (e *ErrorLogger) PrintErrors(lg *log.Logger) {
	// Two loops so they aren't interleaved with logging to stdout.
	if lg != nil {
		for _, err := range e.errors {
			lg.Errorf("%s", err)
		}
	}
	for _, err := range e.errors {
		fmt.Fprintln(os.Stderr, err)
	}
}

func (e *ErrorLogger) String() string {
	return strings.Join(e.errors, "\n")
}

// AsError combines every accumulated message into a single error via
// hashicorp/go-multierror, for callers that want a plain `error` instead
// of a side-channel report. Returns nil if there are no errors.
func (e *ErrorLogger) AsError() error {
	if !e.HaveErrors() {
		return nil
	}
	var merr *multierror.Error
	for _, s := range e.errors {
		merr = multierror.Append(merr, fmt.Errorf("%s", s))
	}
	return merr.ErrorOrNil()
}
