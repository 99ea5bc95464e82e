// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package record

import (
	"time"

	"github.com/H0llyW00dzZ/valuelog/src/format"
)

// Clock supplies the current time.
type Clock func() time.Time

// Factory turns logging call arguments into Records.
type Factory struct {
	formatter *format.Formatter
	clock     Clock
}

// NewFactory creates a Factory. A nil formatter uses [format.New] defaults
// and a nil clock uses [time.Now].
func NewFactory(formatter *format.Formatter, clock Clock) *Factory {
	if formatter == nil {
		formatter = format.New()
	}
	if clock == nil {
		clock = time.Now
	}
	return &Factory{formatter: formatter, clock: clock}
}

// Create stamps the current time and formats args into a Record.
// Each argument is formatted with its own cycle-detection state.
// Create never fails: values that cannot be rendered degrade to a placeholder.
func (f *Factory) Create(severity Severity, args ...any) Record {
	ts := f.clock().UnixMilli()
	res := f.formatter.FormatArgs(args...)
	return New(severity, ts, res.Message, res.Styled)
}

// Formatter returns the formatter used by the factory.
func (f *Factory) Formatter() *format.Formatter { return f.formatter }
