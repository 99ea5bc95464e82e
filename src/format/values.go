// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// Undefined renders as the literal text undefined. It stands for a value
// that was never assigned, as opposed to nil which renders as null.
var Undefined any = undefinedValue{}

// Symbol is a unique token with an optional description.
// Two symbols with the same description are distinct values.
type Symbol struct{ description string }

// NewSymbol returns a new unique symbol.
func NewSymbol(description string) *Symbol { return &Symbol{description: description} }

// Description returns the text the symbol was created with.
func (s *Symbol) Description() string { return s.description }

// String renders the symbol as Symbol(description).
func (s *Symbol) String() string { return "Symbol(" + s.description + ")" }

// Object is an insertion-ordered string-keyed aggregate.
// Keys render in the order they were first set, unlike Go maps whose keys are sorted.
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty [Object].
func NewObject() *Object { return orderedmap.New[string, any]() }
