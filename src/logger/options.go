// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"os"
	"time"

	"github.com/H0llyW00dzZ/valuelog/src/format"
	"github.com/H0llyW00dzZ/valuelog/src/record"
	"github.com/H0llyW00dzZ/valuelog/src/sink"
)

type config struct {
	sink          sink.Sink
	historyLimit  int
	useColors     bool
	printMessage  bool
	showTimestamp bool
	showTimezone  bool
	emitRecord    bool
	clock         record.Clock
	location      *time.Location
	formatOpts    []format.Option
	onError       func(error)
}

func defaultConfig() config {
	return config{
		sink:          sink.NewConsole(os.Stdout, os.Stderr),
		historyLimit:  record.DefaultHistoryLimit,
		useColors:     true,
		printMessage:  true,
		showTimestamp: true,
		emitRecord:    true,
		clock:         time.Now,
		location:      time.Local,
	}
}

// Option configures a [Console].
type Option func(*config)

// WithSink sets where printed lines go. A nil sink discards them.
func WithSink(s sink.Sink) Option {
	return func(c *config) {
		if s == nil {
			s = sink.Discard
		}
		c.sink = s
	}
}

// WithHistoryLimit sets how many records are retained. Negative values are ignored.
func WithHistoryLimit(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.historyLimit = n
		}
	}
}

// WithUseColors enables or disables styling codes in printed lines.
func WithUseColors(enabled bool) Option { return func(c *config) { c.useColors = enabled } }

// WithPrintMessage enables or disables printing.
func WithPrintMessage(enabled bool) Option { return func(c *config) { c.printMessage = enabled } }

// WithShowTimestamp enables or disables the timestamp prefix.
func WithShowTimestamp(enabled bool) Option { return func(c *config) { c.showTimestamp = enabled } }

// WithShowTimezone adds the zone offset to the timestamp.
func WithShowTimezone(enabled bool) Option { return func(c *config) { c.showTimezone = enabled } }

// WithEmitRecord enables or disables subscriber notification.
func WithEmitRecord(enabled bool) Option { return func(c *config) { c.emitRecord = enabled } }

// WithClock sets the time source used to stamp records.
func WithClock(clock record.Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLocation sets the zone printed timestamps are shown in. The default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithScheme sets the styling scheme used for the styled rendering.
func WithScheme(s format.Scheme) Option {
	return func(c *config) { c.formatOpts = append(c.formatOpts, format.WithScheme(s)) }
}

// WithMaxDepth limits how deeply nested values are expanded. Zero means unbounded.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.formatOpts = append(c.formatOpts, format.WithMaxDepth(n)) }
}

// WithErrorCauses prints the chain of wrapped errors below an error value.
func WithErrorCauses(enabled bool) Option {
	return func(c *config) { c.formatOpts = append(c.formatOpts, format.WithErrorCauses(enabled)) }
}

// WithErrorHandler receives subscriber failures and sink write errors.
// Without one they are dropped.
func WithErrorHandler(fn func(error)) Option { return func(c *config) { c.onError = fn } }
