// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

import (
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"math"
	"math/big"
	"reflect"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/valuelog/src/internal/helper/gc"
)

// maxCauses bounds the wrapped-error walk so a self-wrapping error cannot loop.
const maxCauses = 16

// visit identifies an aggregate on the traversal stack.
// Slices include their length so a shorter reslice of the same array is a different value.
type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

// entry is one key/value pair of an object-like aggregate.
type entry struct {
	key   string
	value reflect.Value
}

// printer carries the state of a single top-level formatting call.
type printer struct {
	f      *Formatter
	buf    gc.Buffer
	stack  []visit
	styled bool
}

func (p *printer) token(cat Category, text string) {
	if code := p.f.scheme.Code(cat); code != "" {
		p.buf.WriteString(code)
		p.styled = true
	}
	p.buf.WriteString(text)
}

func (p *printer) value(v reflect.Value, depth int) {
	v = unwrap(v)
	switch classify(v) {
	case kindNull:
		p.token(CatNull, "null")
	case kindUndefined:
		p.token(CatUndefined, "undefined")
	case kindBoolean:
		p.token(CatBoolean, strconv.FormatBool(v.Bool()))
	case kindNumber:
		p.token(CatNumber, number(v))
	case kindBigInt:
		p.token(CatBigInt, bigInt(v)+"n")
	case kindString:
		p.str(v.String(), depth)
	case kindSymbol:
		p.token(CatSymbol, "Symbol("+v.Elem().Field(0).String()+")")
	case kindFunction:
		p.token(CatFunction, functionLabel(v))
	case kindError:
		p.err(v)
	case kindClass:
		p.token(CatClass, classLabel(v.Interface().(reflect.Type)))
	case kindStringer:
		p.stringer(v)
	case kindArray:
		p.array(v, depth)
	case kindObject:
		p.object(v, depth)
	case kindOrdered:
		p.ordered(v, depth)
	case kindPointer:
		p.pointer(v, depth)
	default:
		p.token(CatText, "["+v.Type().String()+"]")
	}
}

// str writes a string verbatim at the top level and single-quoted when
// nested. Newlines are kept as they are.
func (p *printer) str(s string, depth int) {
	if depth == 0 {
		p.token(CatText, s)
		return
	}
	p.token(CatString, "'"+s+"'")
}

// err writes an error as Kind: message. Errors whose message cannot be
// read, because Error panics or the value sits in an unexported field,
// render as [Kind].
func (p *printer) err(v reflect.Value) {
	label := errorKind(v.Type())
	if !v.CanInterface() {
		p.token(CatError, "["+label+"]")
		return
	}
	e := v.Interface().(error)
	msg, ok := safeString(e.Error)
	if !ok {
		p.token(CatError, "["+label+"]")
		return
	}
	p.token(CatError, label+": ")
	p.token(CatText, msg)

	if !p.f.causes {
		return
	}
	cause, unwrapped := safeUnwrap(e)
	for i := 0; unwrapped && cause != nil && i < maxCauses; i++ {
		causeMsg, ok := safeString(cause.Error)
		if !ok {
			break
		}
		p.token(CatText, "\n    caused by ")
		p.token(CatError, errorKind(reflect.TypeOf(cause))+": ")
		p.token(CatText, causeMsg)
		cause, unwrapped = safeUnwrap(cause)
	}
}

func (p *printer) stringer(v reflect.Value) {
	s, ok := safeString(v.Interface().(fmt.Stringer).String)
	if !ok {
		p.token(CatObject, "["+typeLabel(v.Type())+"]")
		return
	}
	p.token(CatText, s)
}

func (p *printer) pointer(v reflect.Value, depth int) {
	id := visit{ptr: v.Pointer(), typ: v.Type()}
	if p.circular(id, typeLabel(v.Type())) {
		return
	}
	p.stack = append(p.stack, id)
	p.value(v.Elem(), depth)
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *printer) array(v reflect.Value, depth int) {
	n := v.Len()
	if v.Kind() == reflect.Slice && n > 0 {
		id := visit{ptr: v.Pointer(), typ: v.Type(), n: n}
		if p.circular(id, typeLabel(v.Type())) {
			return
		}
		p.stack = append(p.stack, id)
		defer func() { p.stack = p.stack[:len(p.stack)-1] }()
	}

	if p.truncated(depth) {
		p.token(CatArray, "["+typeLabel(v.Type())+"]")
		return
	}

	p.token(CatArray, "[ ")
	for i := range n {
		p.value(v.Index(i), depth+1)
		p.separator(CatArray, i, n)
	}
	p.token(CatArray, "]")
}

func (p *printer) object(v reflect.Value, depth int) {
	t := v.Type()
	if v.Kind() == reflect.Map && v.Len() > 0 {
		id := visit{ptr: v.Pointer(), typ: t}
		if p.circular(id, typeLabel(t)) {
			return
		}
		p.stack = append(p.stack, id)
		defer func() { p.stack = p.stack[:len(p.stack)-1] }()
	}

	if p.truncated(depth) {
		p.token(CatObject, "["+typeLabel(t)+"]")
		return
	}

	var entries []entry
	if v.Kind() == reflect.Map {
		entries = mapEntries(v)
	} else {
		entries = structEntries(v, nil)
	}

	prefix := ""
	if t.Name() != "" {
		prefix = t.Name() + " "
	}
	p.entries(prefix, entries, depth)
}

func (p *printer) ordered(v reflect.Value, depth int) {
	id := visit{ptr: v.Pointer(), typ: v.Type()}
	if p.circular(id, "Object") {
		return
	}
	p.stack = append(p.stack, id)
	defer func() { p.stack = p.stack[:len(p.stack)-1] }()

	if p.truncated(depth) {
		p.token(CatObject, "[Object]")
		return
	}

	obj := v.Interface().(*Object)
	entries := make([]entry, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, entry{key: pair.Key, value: reflect.ValueOf(pair.Value)})
	}
	p.entries("", entries, depth)
}

func (p *printer) entries(prefix string, entries []entry, depth int) {
	p.token(CatObject, prefix+"{ ")
	for i, e := range entries {
		p.token(CatProperty, e.key+": ")
		p.value(e.value, depth+1)
		p.separator(CatObject, i, len(entries))
	}
	p.token(CatObject, "}")
}

func (p *printer) separator(cat Category, i, n int) {
	if i < n-1 {
		p.token(cat, ", ")
		return
	}
	p.token(cat, " ")
}

// circular writes the circular marker and reports true when id is an
// ancestor of the value being formatted.
func (p *printer) circular(id visit, label string) bool {
	if !slices.Contains(p.stack, id) {
		return false
	}
	p.token(CatCircular, "[Circular "+label+"]")
	return true
}

func (p *printer) truncated(depth int) bool {
	return p.f.maxDepth > 0 && depth > p.f.maxDepth
}

// structEntries lists the fields of v in declaration order. Fields of
// embedded structs are flattened into the parent's list.
func structEntries(v reflect.Value, out []entry) []entry {
	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		name := sf.Name
		tag, hasTag := sf.Tag.Lookup("log")
		if hasTag {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}

		fv := v.Field(i)
		if sf.Anonymous && !hasTag && fv.Kind() == reflect.Struct {
			out = structEntries(fv, out)
			continue
		}
		out = append(out, entry{key: name, value: fv})
	}
	return out
}

func mapEntries(v reflect.Value) []entry {
	keys := v.MapKeys()
	slices.SortFunc(keys, compareKeys)

	entries := make([]entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, entry{key: keyText(k), value: v.MapIndex(k)})
	}
	return entries
}

// compareKeys orders map keys numerically or lexically when both keys share
// a basic kind, and by their rendered text otherwise.
func compareKeys(a, b reflect.Value) int {
	a, b = unwrap(a), unwrap(b)
	if a.IsValid() && b.IsValid() && a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.String:
			return strings.Compare(a.String(), b.String())
		}
	}
	return strings.Compare(keyText(a), keyText(b))
}

func keyText(k reflect.Value) string {
	k = unwrap(k)
	switch classify(k) {
	case kindNull:
		return "null"
	case kindString:
		return k.String()
	case kindNumber:
		return number(k)
	case kindBoolean:
		return strconv.FormatBool(k.Bool())
	case kindSymbol:
		return "Symbol(" + k.Elem().Field(0).String() + ")"
	}
	if k.CanInterface() {
		return fmt.Sprint(k.Interface())
	}
	return k.Type().String()
}

func number(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return formatFloat(v.Float(), 32)
	case reflect.Float64:
		return formatFloat(v.Float(), 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	default:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

func bigInt(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		return v.Interface().(*big.Int).String()
	}
	b := v.Interface().(big.Int)
	return b.String()
}

// errorKind names an error by its type. Unexported and unnamed
// implementation types are reported as the generic Error.
func errorKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" && token.IsExported(name) {
		return name
	}
	return "Error"
}

// typeLabel names a referenced aggregate, falling back to Array or Object
// for anonymous types.
func typeLabel(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return "Array"
	}
	return "Object"
}

func classLabel(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return "[class (anonymous)]"
	}
	if t.Kind() == reflect.Struct && t.NumField() > 0 && t.Field(0).Anonymous {
		parent := t.Field(0).Type
		for parent.Kind() == reflect.Pointer {
			parent = parent.Elem()
		}
		if parent.Name() != "" {
			return "[class " + name + " extends " + parent.Name() + "]"
		}
	}
	return "[class " + name + "]"
}

func functionLabel(v reflect.Value) string {
	if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
		if name := funcName(fn.Name()); name != "" {
			return "[Function: " + name + "]"
		}
	}
	return "[Function (anonymous)]"
}

// funcName reduces a runtime symbol name to the declared function name.
// Closures have no declared name and yield the empty string.
func funcName(symbol string) string {
	name := symbol
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.IndexByte(name, '['); i >= 0 {
		if j := strings.LastIndexByte(name, ']'); j > i {
			name = name[:i] + name[j+1:]
		}
	}

	last := name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		last = name[i+1:]
	}
	if isClosureName(last) {
		return ""
	}
	return last
}

func isClosureName(s string) bool {
	digits := "0123456789"
	if strings.Trim(s, digits) == "" {
		return true
	}
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok && rest != "" && strings.Trim(rest, digits) == "" {
			return true
		}
	}
	return false
}

// safeUnwrap is errors.Unwrap that reports false instead of propagating a
// panic from the error's Unwrap method.
func safeUnwrap(e error) (cause error, ok bool) {
	defer func() {
		if recover() != nil {
			cause, ok = nil, false
		}
	}()
	return errors.Unwrap(e), true
}

// safeString calls fn and reports false instead of propagating a panic.
func safeString(fn func() string) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	return fn(), true
}
