// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package journal is the warning sink the core may emit to (spec §1: "a
// journal sink the core may emit warnings to"), mirroring the shape of
// the teacher repository's inp/logging.go: a stdlib *log.Logger wrapping
// a writer, with small helpers for conditional logging. It never gates
// control flow — the caller decides what to do; the journal only records.
package journal

import (
	"io"
	"log"
	"os"
)

// Sink wraps a *log.Logger used to record non-fatal core events; the
// material-point drivers write one each time they cut a substep.
type Sink struct {
	log *log.Logger
}

// New wraps w (e.g. an os.File or io.Discard) as a Sink
func New(w io.Writer) *Sink {
	return &Sink{log: log.New(w, "", log.LstdFlags)}
}

// NewFile creates (or truncates) a log file at path and wraps it
func NewFile(path string) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return New(f), nil
}

// Discard is a Sink that drops everything; the zero-value default for a
// driver constructed without an explicit journal.
var Discard = New(io.Discard)

// Warnf records a warning
func (s *Sink) Warnf(format string, args ...interface{}) {
	if s == nil {
		return
	}
	s.log.Printf("WARN: "+format, args...)
}

// Errorf records an error condition and returns true if err != nil
func (s *Sink) Errorf(err error, format string, args ...interface{}) (logged bool) {
	if s == nil || err == nil {
		return false
	}
	s.log.Printf("ERROR: "+format+": %v", append(args, err)...)
	return true
}
