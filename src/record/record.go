// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package record

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/valuelog/src/format"
)

// ErrInvalidSeverity is returned by [ParseSeverity] for unknown names.
var ErrInvalidSeverity = errors.New("invalid severity")

// Severity classifies a Record.
type Severity int

const (
	Info Severity = iota
	Warn
	Error
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Category returns the styling category used to color lines of this severity.
func (s Severity) Category() format.Category {
	switch s {
	case Warn:
		return format.CatWarn
	case Error:
		return format.CatErrorSeverity
	default:
		return format.CatInfo
	}
}

// ParseSeverity converts a name into a Severity. "log" is accepted as an alias of info.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info", "log":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("%w: %q", ErrInvalidSeverity, name)
	}
}

// Record is one logged event. A Record is a value; its fields cannot be
// changed after it has been built.
type Record struct {
	severity  Severity
	timestamp int64
	message   string
	styled    string
}

// New builds a Record. Message must be styled with its styling codes removed;
// [Factory.Create] guarantees this by deriving both from one formatting pass.
func New(severity Severity, timestamp int64, message, styled string) Record {
	return Record{
		severity:  severity,
		timestamp: timestamp,
		message:   message,
		styled:    styled,
	}
}

// Severity returns the record's severity.
func (r Record) Severity() Severity { return r.severity }

// Timestamp returns the creation time in milliseconds since the Unix epoch.
func (r Record) Timestamp() int64 { return r.timestamp }

// Time returns the creation time.
func (r Record) Time() time.Time { return time.UnixMilli(r.timestamp) }

// Message returns the plain-text rendering.
func (r Record) Message() string { return r.message }

// Styled returns the rendering with styling codes applied.
func (r Record) Styled() string { return r.styled }

// String returns the plain-text rendering.
func (r Record) String() string { return r.message }
