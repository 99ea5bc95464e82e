// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format_test

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"math/big"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/valuelog/src/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Foo struct {
	A int    `log:"a"`
	B string `log:"b"`
}

type Bar struct {
	Foo
	C bool `log:"c"`
	D any  `log:"d"`
}

type A struct {
	A   int `log:"a"`
	Obj *B  `log:"obj"`
}

type B struct {
	B   int `log:"b"`
	Ref *A  `log:"ref"`
}

type point struct{ x, y int }

type Headers map[string]string

type BrokenError struct{}

func (BrokenError) Error() string { panic("message accessor failed") }

type BrokenUnwrap struct{}

func (BrokenUnwrap) Error() string { return "broken" }
func (BrokenUnwrap) Unwrap() error { panic("unwrap failed") }

type job struct {
	name string
	err  error
}

type BrokenStringer struct{}

func (BrokenStringer) String() string { panic("stringer failed") }

type secret struct {
	Name  string
	Token string `log:"-"`
}

func foo() {}

func cyclicArray() []any {
	arrayC := []any{1, 2, 3, nil}
	arrayD := []any{"a", "b", arrayC}
	arrayC[3] = arrayD
	return arrayD
}

func TestFormat_Message(t *testing.T) {
	f := format.New()

	ordered := format.NewObject()
	ordered.Set("1", "foo")
	ordered.Set("a", "bar")

	insertion := format.NewObject()
	insertion.Set("zeta", 1)
	insertion.Set("alpha", 2)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "Nil", value: nil, want: "null"},
		{name: "NilPointer", value: (*Foo)(nil), want: "null"},
		{name: "Undefined", value: format.Undefined, want: "undefined"},
		{name: "True", value: true, want: "true"},
		{name: "False", value: false, want: "false"},
		{name: "Zero", value: 0, want: "0"},
		{name: "Negative", value: -1, want: "-1"},
		{name: "Sum", value: 40 + 2, want: "42"},
		{name: "Uint", value: uint8(7), want: "7"},
		{name: "Float", value: 1.5, want: "1.5"},
		{name: "FloatFraction", value: 0.1, want: "0.1"},
		{name: "Float32", value: float32(2.25), want: "2.25"},
		{name: "FloatIntegral", value: 3.0, want: "3"},
		{name: "FloatLarge", value: 1e21, want: "1e+21"},
		{name: "NaN", value: math.NaN(), want: "NaN"},
		{name: "Infinity", value: math.Inf(1), want: "Infinity"},
		{name: "NegativeInfinity", value: math.Inf(-1), want: "-Infinity"},
		{name: "BigIntZero", value: big.NewInt(0), want: "0n"},
		{name: "BigIntOne", value: big.NewInt(1), want: "1n"},
		{name: "String", value: "foobar", want: "foobar"},
		{name: "EmptyString", value: "", want: ""},
		{name: "MultilineString", value: "foo\nbar", want: "foo\nbar"},
		{name: "SymbolEmpty", value: format.NewSymbol(""), want: "Symbol()"},
		{name: "SymbolDescribed", value: format.NewSymbol("foo"), want: "Symbol(foo)"},
		{name: "Array", value: []int{1, 2, 3}, want: "[ 1, 2, 3 ]"},
		{name: "ArrayMixed", value: []any{1, "foo"}, want: "[ 1, 'foo' ]"},
		{name: "ArrayNested", value: []any{[]string{"a", "b"}, []int{1, 2}}, want: "[ [ 'a', 'b' ], [ 1, 2 ] ]"},
		{name: "ArrayFixed", value: [2]bool{true, false}, want: "[ true, false ]"},
		{name: "ArrayEmpty", value: []int{}, want: "[ ]"},
		{name: "ArrayNil", value: []int(nil), want: "[ ]"},
		{name: "ArrayNestedMultiline", value: []string{"foo\nbar"}, want: "[ 'foo\nbar' ]"},
		{name: "ObjectEmpty", value: map[string]any{}, want: "{ }"},
		{name: "ObjectOrdered", value: ordered, want: "{ 1: 'foo', a: 'bar' }"},
		{name: "ObjectInsertionOrder", value: insertion, want: "{ zeta: 1, alpha: 2 }"},
		{name: "ObjectNestedValues", value: map[string]any{"a": []int{1, 2}, "b": nil}, want: "{ a: [ 1, 2 ], b: null }"},
		{name: "MapNumericKeys", value: map[int]string{10: "c", 2: "b", 1: "a"}, want: "{ 1: 'a', 2: 'b', 10: 'c' }"},
		{name: "NamedMap", value: Headers{"Accept": "*/*"}, want: "Headers { Accept: '*/*' }"},
		{name: "ClassFoo", value: reflect.TypeOf(Foo{}), want: "[class Foo]"},
		{name: "ClassBar", value: reflect.TypeOf(Bar{}), want: "[class Bar extends Foo]"},
		{name: "ClassPointer", value: reflect.TypeOf(&Foo{}), want: "[class Foo]"},
		{name: "ClassAnonymous", value: reflect.TypeOf(struct{}{}), want: "[class (anonymous)]"},
		{name: "InstanceFoo", value: Foo{A: 1, B: "2"}, want: "Foo { a: 1, b: '2' }"},
		{name: "InstanceBar", value: Bar{Foo: Foo{A: 1, B: "2"}, C: true}, want: "Bar { a: 1, b: '2', c: true, d: null }"},
		{name: "InstancePointer", value: &Foo{A: 1, B: "2"}, want: "Foo { a: 1, b: '2' }"},
		{name: "InstanceEmpty", value: struct{}{}, want: "{ }"},
		{name: "UnexportedFields", value: point{x: 1, y: 2}, want: "point { x: 1, y: 2 }"},
		{name: "SkippedField", value: secret{Name: "db", Token: "hunter2"}, want: "secret { Name: 'db' }"},
		{name: "NamedFunction", value: foo, want: "[Function: foo]"},
		{name: "AnonymousFunction", value: func() {}, want: "[Function (anonymous)]"},
		{name: "ErrorPlain", value: errors.New("boom"), want: "Error: boom"},
		{name: "ErrorTyped", value: &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, want: "PathError: open x: file does not exist"},
		{name: "ErrorBroken", value: BrokenError{}, want: "[BrokenError]"},
		{name: "ErrorUnexportedField", value: job{name: "sync", err: errors.New("boom")}, want: "job { name: 'sync', err: [Error] }"},
		{name: "ErrorUnexportedFieldTyped", value: job{name: "open", err: &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}}, want: "job { name: 'open', err: [PathError] }"},
		{name: "ErrorUnexportedFieldNil", value: job{name: "ok"}, want: "job { name: 'ok', err: null }"},
		{name: "Stringer", value: 1500 * time.Millisecond, want: "1.5s"},
		{name: "StringerBroken", value: BrokenStringer{}, want: "[BrokenStringer]"},
		{name: "Channel", value: make(chan int), want: "[chan int]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Format(tt.value)
			assert.Equal(t, tt.want, got.Message)
			assert.Equal(t, got.Message, format.Strip(got.Styled), "styled text must strip to the message")
		})
	}
}

func TestFormat_Circular(t *testing.T) {
	f := format.New()

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "StructPointers",
			testFunc: func(t *testing.T) {
				a := &A{A: 1}
				a.Obj = &B{B: 1, Ref: a}

				assert.Equal(t, "A { a: 1, obj: B { b: 1, ref: [Circular A] } }", f.Format(a).Message)
			},
		},
		{
			name: "Arrays",
			testFunc: func(t *testing.T) {
				got := f.Format(cyclicArray()).Message
				assert.Equal(t, "[ 'a', 'b', [ 1, 2, 3, [Circular Array] ] ]", got)
				assert.Equal(t, 1, strings.Count(got, "[Circular"))
			},
		},
		{
			name: "MapContainsItself",
			testFunc: func(t *testing.T) {
				m := map[string]any{"n": 1}
				m["self"] = m

				assert.Equal(t, "{ n: 1, self: [Circular Object] }", f.Format(m).Message)
			},
		},
		{
			name: "OrderedObjectContainsItself",
			testFunc: func(t *testing.T) {
				obj := format.NewObject()
				obj.Set("self", obj)

				assert.Equal(t, "{ self: [Circular Object] }", f.Format(obj).Message)
			},
		},
		{
			name: "SiblingsAreNotCircular",
			testFunc: func(t *testing.T) {
				shared := []int{1}
				sharedFoo := &Foo{A: 1, B: "x"}

				assert.Equal(t, "[ [ 1 ], [ 1 ] ]", f.Format([]any{shared, shared}).Message)
				assert.Equal(t, "[ Foo { a: 1, b: 'x' }, Foo { a: 1, b: 'x' } ]",
					f.Format([]any{sharedFoo, sharedFoo}).Message)
			},
		},
		{
			name: "IndependentTopLevelCalls",
			testFunc: func(t *testing.T) {
				want := "[ 'a', 'b', [ 1, 2, 3, [Circular Array] ] ]"
				cyclic := cyclicArray()

				assert.Equal(t, want, f.Format(cyclic).Message)
				assert.Equal(t, want, f.Format(cyclic).Message)
				assert.Equal(t, want+" "+want, f.FormatArgs(cyclic, cyclic).Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestFormatArgs(t *testing.T) {
	f := format.New()

	tests := []struct {
		name string
		args []any
		want string
	}{
		{name: "Strings", args: []any{"foo", "bar"}, want: "foo bar"},
		{name: "Numbers", args: []any{1, 2, 3}, want: "1 2 3"},
		{name: "Booleans", args: []any{true, false}, want: "true false"},
		{name: "Mixed", args: []any{1, 2, 3, "and", "a", "b", "c"}, want: "1 2 3 and a b c"},
		{name: "EmptyStrings", args: []any{"", ""}, want: " "},
		{name: "Whitespace", args: []any{"  "}, want: "  "},
		{name: "Newline", args: []any{"foo\nbar", 1}, want: "foo\nbar 1"},
		{name: "ObjectAndArray", args: []any{map[string]any{"foo": "bar"}, "and", []string{"a", "b"}}, want: "{ foo: 'bar' } and [ 'a', 'b' ]"},
		{name: "None", args: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.FormatArgs(tt.args...)
			assert.Equal(t, tt.want, got.Message)
			assert.Equal(t, got.Message, format.Strip(got.Styled))
		})
	}
}

func TestFormat_Styled(t *testing.T) {
	scheme := format.DefaultScheme()
	f := format.New(format.WithScheme(scheme))

	got := f.Format([]any{1, "x", true})
	assert.Contains(t, got.Styled, scheme.Code(format.CatNumber)+"1")
	assert.Contains(t, got.Styled, scheme.Code(format.CatString)+"'x'")
	assert.Contains(t, got.Styled, scheme.Code(format.CatBoolean)+"true")
	assert.True(t, strings.HasSuffix(got.Styled, scheme.Code(format.CatDefault)), "styled text must end with the reset code")

	plain := format.New(format.WithScheme(format.NoColorScheme())).Format([]any{1, "x", true})
	assert.Equal(t, plain.Message, plain.Styled)
	assert.Equal(t, got.Message, plain.Message)

	// String content survives in the message byte for byte, apart from
	// styling codes the caller embedded.
	for _, content := range []string{
		"bad\xffutf8",
		"\x1b]0;title\x07after",
		"tail\x1b",
		"open\x1b[12",
		"\x9b31mc1",
		"caf\u00e9 \u2603",
	} {
		got := f.Format(content)
		assert.Equal(t, content, got.Message, "%q", content)
		assert.Equal(t, got.Message, format.Strip(got.Styled), "%q", content)
	}
	assert.Equal(t, "red", f.Format("\x1b[31mred").Message)
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Plain", in: "plain", want: "plain"},
		{name: "SGR", in: "\x1b[38;5;250mtext\x1b[0m", want: "text"},
		{name: "CursorMoveKept", in: "a\x1b[2Jb", want: "a\x1b[2Jb"},
		{name: "OSCKept", in: "\x1b]8;;http://x\x1b\\link\x1b]8;;\x1b\\", want: "\x1b]8;;http://x\x1b\\link\x1b]8;;\x1b\\"},
		{name: "InvalidUTF8Kept", in: "\x1b[1m\xff\xfe\x1b[0m", want: "\xff\xfe"},
		{name: "UnterminatedKept", in: "x\x1b[31", want: "x\x1b[31"},
		{name: "Empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Strip(tt.in))
		})
	}
}

func TestFormat_ArrayShape(t *testing.T) {
	f := format.New()

	arrays := []any{
		[]int{1},
		[]int{1, 2},
		[]any{1, "two", 3.5, nil},
		[]any{[]int{1, 2}, map[string]int{"a": 1, "b": 2}, "x"},
	}

	for _, arr := range arrays {
		msg := f.Format(arr).Message
		require.True(t, strings.HasPrefix(msg, "["), msg)
		require.True(t, strings.HasSuffix(msg, "]"), msg)

		n := reflect.ValueOf(arr).Len()
		assert.Equal(t, n-1, topLevelCommas(msg), msg)
	}
}

// topLevelCommas counts the commas that separate the outermost array's elements.
func topLevelCommas(s string) int {
	depth, count := 0, 0
	for _, r := range s {
		switch r {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case ',':
			if depth == 1 {
				count++
			}
		}
	}
	return count
}

func TestFormat_MaxDepth(t *testing.T) {
	nested := map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}

	assert.Equal(t, "{ a: { b: { c: 1 } } }", format.New().Format(nested).Message)
	assert.Equal(t, "{ a: { b: [Object] } }", format.New(format.WithMaxDepth(1)).Format(nested).Message)
	assert.Equal(t, "[ [ [Array] ] ]", format.New(format.WithMaxDepth(1)).Format([]any{[]any{[]int{1}}}).Message)
	assert.Equal(t, "{ a: { b: { c: 1 } } }", format.New(format.WithMaxDepth(-3)).Format(nested).Message)
}

func TestFormat_ErrorCauses(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New("inner"))

	assert.Equal(t, "Error: outer: inner", format.New().Format(err).Message)
	assert.Equal(t, "Error: outer: inner\n    caused by Error: inner",
		format.New(format.WithErrorCauses(true)).Format(err).Message)

	tests := []struct {
		name  string
		value error
		want  string
	}{
		{name: "BrokenUnwrap", value: BrokenUnwrap{}, want: "BrokenUnwrap: broken"},
		{name: "BrokenUnwrapCause", value: fmt.Errorf("outer: %w", BrokenUnwrap{}), want: "Error: outer: broken\n    caused by BrokenUnwrap: broken"},
	}

	f := format.New(format.WithErrorCauses(true))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got format.Result
			require.NotPanics(t, func() { got = f.Format(tt.value) })
			assert.Equal(t, tt.want, got.Message)
		})
	}
}

func TestScheme(t *testing.T) {
	s := format.DefaultScheme()

	assert.Equal(t, s.Code(format.CatText), s.Code(format.Category("unknown")))
	assert.True(t, s.Colored())
	assert.False(t, format.NoColorScheme().Colored())

	modified := s.With(format.CatNumber, "\x1b[31m")
	assert.Equal(t, "\x1b[31m", modified.Code(format.CatNumber))
	assert.Equal(t, "\x1b[38;5;64m", s.Code(format.CatNumber), "With must not mutate the original scheme")
}

func BenchmarkFormat_Nested(b *testing.B) {
	f := format.New()
	value := map[string]any{
		"list":  []any{1, "two", 3.5, true, nil},
		"inner": Bar{Foo: Foo{A: 1, B: "2"}, C: true},
	}

	b.ReportAllocs()

	for b.Loop() {
		f.Format(value)
	}
}
