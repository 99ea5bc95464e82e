// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

import (
	"fmt"
	"math/big"
	"reflect"
)

// kind is the closed set of value shapes the formatter knows how to render.
type kind int

const (
	kindNull kind = iota
	kindUndefined
	kindBoolean
	kindNumber
	kindBigInt
	kindString
	kindSymbol
	kindFunction
	kindError
	kindClass
	kindArray
	kindObject
	kindOrdered
	kindStringer
	kindPointer
	kindOther
)

var (
	undefinedType   = reflect.TypeOf(undefinedValue{})
	symbolType      = reflect.TypeOf((*Symbol)(nil))
	bigIntPtrType   = reflect.TypeOf((*big.Int)(nil))
	bigIntType      = reflect.TypeOf(big.Int{})
	objectType      = reflect.TypeOf((*Object)(nil))
	errorType       = reflect.TypeOf((*error)(nil)).Elem()
	stringerType    = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	reflectTypeType = reflect.TypeOf((*reflect.Type)(nil)).Elem()
)

// unwrap strips interface layers so classification sees the dynamic value.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// classify decides the rendering kind of v once, before any text is written.
func classify(v reflect.Value) kind {
	if !v.IsValid() {
		return kindNull
	}

	t := v.Type()
	switch t {
	case undefinedType:
		return kindUndefined
	case symbolType:
		if v.IsNil() {
			return kindNull
		}
		return kindSymbol
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return kindNull
		}
	}

	// Errors read from unexported fields keep their kind; the printer
	// labels them without calling Error.
	if !v.CanInterface() && t.Implements(errorType) {
		return kindError
	}

	// Other values read from unexported fields cannot be converted back to
	// interfaces, so they are rendered by kind alone.
	if v.CanInterface() {
		switch t {
		case bigIntPtrType, bigIntType:
			return kindBigInt
		case objectType:
			return kindOrdered
		}
		switch {
		case t.Implements(reflectTypeType):
			return kindClass
		case t.Implements(errorType):
			return kindError
		case t.Implements(stringerType) && !isAggregate(t):
			return kindStringer
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		return kindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return kindNumber
	case reflect.String:
		return kindString
	case reflect.Func:
		return kindFunction
	case reflect.Slice, reflect.Array:
		return kindArray
	case reflect.Map, reflect.Struct:
		return kindObject
	case reflect.Pointer:
		return kindPointer
	default:
		return kindOther
	}
}

// isAggregate reports whether values of t are rendered structurally even
// when t has a String method.
func isAggregate(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}
