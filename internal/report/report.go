// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package report writes the human-readable result lines of a run.
package report

import (
	"fmt"
	"io"
)

const (
	connected    = "connected"
	notConnected = "not connected"
)

// Writer formats connection echoes and request results onto an io.Writer.
type Writer struct {
	w io.Writer
}

// New creates a Writer over w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Connection echoes an accepted connection line.
func (r *Writer) Connection(lval, rval string) error {
	_, err := fmt.Fprintf(r.w, "connection: lval: %s rval: %s\n", lval, rval)
	return err
}

// Request writes the result for one request.
func (r *Writer) Request(lval, rval string, isConnected bool) error {
	status := notConnected
	if isConnected {
		status = connected
	}
	_, err := fmt.Fprintf(r.w, "request: lval: %s rval: %s: %s\n", lval, rval, status)
	return err
}
