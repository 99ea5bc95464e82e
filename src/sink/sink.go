// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sink

import (
	"errors"
	"io"
	"sync"

	"github.com/H0llyW00dzZ/valuelog/src/record"
)

// Sink consumes printed records.
type Sink interface {
	// Write outputs line, the rendering of r. line carries no trailing newline.
	Write(r record.Record, line string) error
}

// Func adapts a function to the [Sink] interface.
type Func func(r record.Record, line string) error

// Write calls f(r, line).
func (f Func) Write(r record.Record, line string) error { return f(r, line) }

// Writer writes every line to a single io.Writer.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a Writer sink. A nil w discards output.
func NewWriter(w io.Writer) *Writer {
	s := &Writer{}
	s.SetOutput(w)
	return s
}

// SetOutput replaces the destination. A nil w discards output.
func (s *Writer) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

// Write writes line followed by a newline.
func (s *Writer) Write(_ record.Record, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeLine(s.w, line)
}

// Console routes info records to the output writer and warn and error
// records to the error writer.
type Console struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewConsole creates a Console sink. Nil writers discard output.
func NewConsole(out, errOut io.Writer) *Console {
	c := &Console{}
	c.SetOutput(out)
	c.SetErrorOutput(errOut)
	return c
}

// SetOutput replaces the info destination.
func (c *Console) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.mu.Lock()
	c.out = w
	c.mu.Unlock()
}

// SetErrorOutput replaces the warn and error destination.
func (c *Console) SetErrorOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.mu.Lock()
	c.err = w
	c.mu.Unlock()
}

// Write writes line to the destination for r's severity.
func (c *Console) Write(r record.Record, line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := c.out
	if r.Severity() != record.Info {
		w = c.err
	}
	return writeLine(w, line)
}

type multi []Sink

// Multi returns a Sink writing to every sink in order. Every sink is written
// even when an earlier one fails; failures are joined.
func Multi(sinks ...Sink) Sink {
	m := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

func (m multi) Write(r record.Record, line string) error {
	var errs []error
	for _, s := range m {
		if err := s.Write(r, line); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard is a Sink that drops every line.
var Discard Sink = Func(func(record.Record, string) error { return nil })

func writeLine(w io.Writer, line string) error {
	_, err := io.WriteString(w, line+"\n")
	return err
}
