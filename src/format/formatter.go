// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

import (
	"reflect"
	"strings"

	"github.com/H0llyW00dzZ/valuelog/src/internal/helper/gc"
	"github.com/charmbracelet/x/ansi"
)

// Result holds both renderings produced by one formatting pass.
//
// Message is always exactly Styled with every styling code removed.
type Result struct {
	Message string // plain text, stable and safe to persist
	Styled  string // text with styling codes, for terminals
}

// Formatter converts arbitrary values into text.
//
// A Formatter holds no per-call state and is safe for concurrent use by
// multiple goroutines.
type Formatter struct {
	scheme   Scheme
	maxDepth int
	causes   bool
}

// Option configures a [Formatter].
type Option func(*Formatter)

// WithScheme sets the styling scheme. The default is [DefaultScheme].
func WithScheme(s Scheme) Option { return func(f *Formatter) { f.scheme = s } }

// WithMaxDepth limits how many levels of nested arrays and objects are
// expanded. Deeper aggregates render as [Array], [Object] or [TypeName].
// Zero, the default, means unbounded; negative values are ignored.
func WithMaxDepth(n int) Option {
	return func(f *Formatter) {
		if n >= 0 {
			f.maxDepth = n
		}
	}
}

// WithErrorCauses appends the chain of wrapped errors below an error's
// own message, one "caused by" line per cause.
func WithErrorCauses(enabled bool) Option { return func(f *Formatter) { f.causes = enabled } }

// New creates a Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{scheme: DefaultScheme()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Scheme returns the styling scheme the formatter was built with.
func (f *Formatter) Scheme() Scheme { return f.scheme }

// Format renders a single value.
func (f *Formatter) Format(v any) Result {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	f.render(buf, v)
	return result(buf.String())
}

// FormatArgs renders each argument independently and joins them with a
// single space. Every argument gets its own cycle-detection state.
func (f *Formatter) FormatArgs(args ...any) Result {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for i, arg := range args {
		if i > 0 {
			buf.WriteByte(' ')
		}
		f.render(buf, arg)
	}
	return result(buf.String())
}

func (f *Formatter) render(buf gc.Buffer, v any) {
	p := &printer{f: f, buf: buf}
	p.value(reflect.ValueOf(v), 0)
	if p.styled {
		buf.WriteString(f.scheme.Code(CatDefault))
	}
}

func result(styled string) Result {
	return Result{Message: Strip(styled), Styled: styled}
}

// Strip removes styling codes, the SGR sequences of the form ESC [ ... m,
// from s. Every other byte, including other escape sequences and invalid
// UTF-8, is kept as it is.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	var state byte
	for len(s) > 0 {
		seq, _, n, newState := ansi.DecodeSequence(s, state, nil)
		if n <= 0 {
			seq, n, newState = s[:1], 1, ansi.NormalState
		}
		if !isSGR(seq) {
			b.WriteString(seq)
		}
		state = newState
		s = s[n:]
	}
	return b.String()
}

func isSGR(seq string) bool {
	return len(seq) > 2 && seq[0] == ansi.ESC && seq[1] == '[' && seq[len(seq)-1] == 'm'
}
