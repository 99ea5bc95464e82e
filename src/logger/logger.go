// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/H0llyW00dzZ/valuelog/src/format"
	"github.com/H0llyW00dzZ/valuelog/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/valuelog/src/record"
	"github.com/H0llyW00dzZ/valuelog/src/sink"
)

// Logger defines the interface for plain diagnostic output.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

const (
	timestampLayout   = "Jan 02 2006 15:04:05"
	timestampTZLayout = "Jan 02 2006 15:04:05 GMT-0700"
)

// Console creates, retains, publishes and prints Records.
type Console struct {
	mu      sync.Mutex // serializes record creation, history append and the delivery queue
	factory *record.Factory
	history *record.History
	hub     *record.Hub

	pending    []record.Record // created but not yet delivered, in history order
	delivering bool            // a caller is draining pending

	sinkMu sync.RWMutex
	sink   sink.Sink

	useColors     atomic.Bool
	printMessage  atomic.Bool
	showTimestamp atomic.Bool
	showTimezone  atomic.Bool

	location *time.Location
	onError  func(error)
}

var _ Logger = (*Console)(nil)

// New creates a Console. Without options it prints colored lines with
// timestamps to os.Stdout and os.Stderr and keeps the last 50 records.
func New(opts ...Option) *Console {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Console{
		factory:  record.NewFactory(format.New(cfg.formatOpts...), cfg.clock),
		history:  record.NewHistory(cfg.historyLimit),
		hub:      record.NewHub(),
		sink:     cfg.sink,
		location: cfg.location,
		onError:  cfg.onError,
	}
	c.useColors.Store(cfg.useColors)
	c.printMessage.Store(cfg.printMessage)
	c.showTimestamp.Store(cfg.showTimestamp)
	c.showTimezone.Store(cfg.showTimezone)
	c.hub.SetEnabled(cfg.emitRecord)
	return c
}

var (
	defaultOnce    sync.Once
	defaultConsole *Console
)

// Default returns the process-wide Console. It is built on first use, with
// colors enabled only when standard output is a terminal, and reused by
// reference afterwards.
func Default() *Console {
	defaultOnce.Do(func() {
		defaultConsole = New(WithUseColors(sink.ColorSupported(os.Stdout)))
	})
	return defaultConsole
}

// Log prints args at info severity and returns the created Record.
func (c *Console) Log(args ...any) record.Record { return c.Print(record.Info, args...) }

// Info prints args at info severity and returns the created Record.
func (c *Console) Info(args ...any) record.Record { return c.Print(record.Info, args...) }

// Warn prints args at warn severity and returns the created Record.
func (c *Console) Warn(args ...any) record.Record { return c.Print(record.Warn, args...) }

// Error prints args at error severity and returns the created Record.
func (c *Console) Error(args ...any) record.Record { return c.Print(record.Error, args...) }

// Print creates a Record for args and prints it.
func (c *Console) Print(severity record.Severity, args ...any) record.Record {
	r := c.CreateRecord(severity, args...)
	c.PrintRecord(r)
	return r
}

// CreateRecord formats args into a Record, appends it to the history and
// notifies subscribers when emitting is enabled. It does not print.
//
// Subscribers receive records in history order. A record created while
// another call is delivering, including from inside a handler, is handed to
// that call and delivered once the records queued before it are done.
//
// Subscriber failures are reported to the error handler and never change
// the returned Record.
func (c *Console) CreateRecord(severity record.Severity, args ...any) record.Record {
	c.mu.Lock()
	r := c.factory.Create(severity, args...)
	c.history.Append(r)
	c.pending = append(c.pending, r)
	if c.delivering {
		c.mu.Unlock()
		return r
	}
	c.delivering = true
	c.mu.Unlock()

	c.deliver()
	return r
}

// deliver notifies subscribers of every pending record until the queue is
// empty. Only one caller delivers at a time.
func (c *Console) deliver() {
	done := false
	defer func() {
		if !done {
			// An error handler panicked; let the next caller resume delivery.
			c.mu.Lock()
			c.delivering = false
			c.mu.Unlock()
		}
	}()

	for {
		c.mu.Lock()
		if len(c.pending) == 0 {
			c.pending = nil
			c.delivering = false
			c.mu.Unlock()
			done = true
			return
		}
		r := c.pending[0]
		c.pending[0] = record.Record{}
		c.pending = c.pending[1:]
		c.mu.Unlock()

		if err := c.hub.Notify(r); err != nil {
			c.report(err)
		}
	}
}

// PrintRecord writes r to the sink when printing is enabled.
func (c *Console) PrintRecord(r record.Record) {
	if !c.printMessage.Load() {
		return
	}

	c.sinkMu.RLock()
	s := c.sink
	c.sinkMu.RUnlock()

	if err := s.Write(r, c.Line(r)); err != nil {
		c.report(fmt.Errorf("print record: %w", err))
	}
}

// Line renders r the way PrintRecord prints it, without a trailing newline:
//
//	# [Jan 02 2006 15:04:05] message
//
// Severity and timestamp colors are applied only when colors are enabled.
func (c *Console) Line(r record.Record) string {
	colors := c.useColors.Load()
	scheme := c.factory.Formatter().Scheme()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if colors {
		buf.WriteString(scheme.Code(r.Severity().Category()))
	}
	buf.WriteString("# ")
	if c.showTimestamp.Load() {
		if colors {
			buf.WriteString(scheme.Code(format.CatTimestamp))
		}
		buf.WriteByte('[')
		buf.WriteString(c.timestamp(r))
		buf.WriteString("] ")
	}
	if colors {
		buf.WriteString(r.Styled())
		buf.WriteString(scheme.Code(format.CatDefault))
	} else {
		buf.WriteString(r.Message())
	}
	return buf.String()
}

func (c *Console) timestamp(r record.Record) string {
	layout := timestampLayout
	if c.showTimezone.Load() {
		layout = timestampTZLayout
	}
	return r.Time().In(c.location).Format(layout)
}

// Format renders a single value without creating a Record.
func (c *Console) Format(v any) format.Result { return c.factory.Formatter().Format(v) }

// History returns a snapshot of the retained records, oldest first.
func (c *Console) History() []record.Record { return c.history.Records() }

// HistoryStats returns the history usage counters.
func (c *Console) HistoryStats() record.Stats { return c.history.Stats() }

// ClearHistory removes every retained record.
func (c *Console) ClearHistory() { c.history.Clear() }

// HistoryLimit returns the maximum number of retained records.
func (c *Console) HistoryLimit() int { return c.history.Limit() }

// SetHistoryLimit changes the history limit and evicts the oldest records
// when it shrinks. A negative n is ignored and reported as false.
func (c *Console) SetHistoryLimit(n int) bool { return c.history.SetLimit(n) }

// UseColors reports whether printed lines carry styling codes.
func (c *Console) UseColors() bool { return c.useColors.Load() }

// SetUseColors enables or disables styling codes in printed lines.
func (c *Console) SetUseColors(enabled bool) { c.useColors.Store(enabled) }

// PrintMessage reports whether records are printed.
func (c *Console) PrintMessage() bool { return c.printMessage.Load() }

// SetPrintMessage enables or disables printing. Records are still created.
func (c *Console) SetPrintMessage(enabled bool) { c.printMessage.Store(enabled) }

// ShowTimestamp reports whether printed lines include the timestamp.
func (c *Console) ShowTimestamp() bool { return c.showTimestamp.Load() }

// SetShowTimestamp enables or disables the timestamp prefix.
func (c *Console) SetShowTimestamp(enabled bool) { c.showTimestamp.Store(enabled) }

// ShowTimezone reports whether the timestamp includes the zone offset.
func (c *Console) ShowTimezone() bool { return c.showTimezone.Load() }

// SetShowTimezone enables or disables the zone offset in the timestamp.
func (c *Console) SetShowTimezone(enabled bool) { c.showTimezone.Store(enabled) }

// EmitRecord reports whether subscribers are notified.
func (c *Console) EmitRecord() bool { return c.hub.Enabled() }

// SetEmitRecord enables or disables subscriber notification.
// Subscribers stay registered while disabled.
func (c *Console) SetEmitRecord(enabled bool) { c.hub.SetEnabled(enabled) }

// Subscribe registers h to receive every created Record.
func (c *Console) Subscribe(h record.Handler) record.SubscriptionID { return c.hub.Subscribe(h) }

// Unsubscribe removes a handler and reports whether it was registered.
func (c *Console) Unsubscribe(id record.SubscriptionID) bool { return c.hub.Unsubscribe(id) }

// Sink returns the current sink.
func (c *Console) Sink() sink.Sink {
	c.sinkMu.RLock()
	defer c.sinkMu.RUnlock()
	return c.sink
}

// SetSink replaces the sink. A nil sink discards printed lines.
func (c *Console) SetSink(s sink.Sink) {
	if s == nil {
		s = sink.Discard
	}
	c.sinkMu.Lock()
	c.sink = s
	c.sinkMu.Unlock()
}

// Printf formats according to a format specifier and logs the result at info severity.
func (c *Console) Printf(format string, v ...any) { c.Info(fmt.Sprintf(format, v...)) }

// Println logs v at info severity.
func (c *Console) Println(v ...any) { c.Info(v...) }

// SetOutput sends every printed line, whatever its severity, to w.
func (c *Console) SetOutput(w io.Writer) { c.SetSink(sink.NewWriter(w)) }

func (c *Console) report(err error) {
	if c.onError != nil {
		c.onError(err)
	}
}
