// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/H0llyW00dzZ/valuelog/src/format"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedKey is returned for YAML mappings with non-scalar keys.
var ErrUnsupportedKey = errors.New("mapping keys must be scalars")

// DecodeValue parses text as a single YAML document and converts it into the
// values the formatter renders:
//   - mappings become insertion-ordered [format.Object]s
//   - sequences become []any
//   - integers become int64, or *big.Int when they do not fit or carry the suffix n
//   - floats become float64 (.inf and .nan included)
//   - null and ~ become nil; the plain word undefined becomes [format.Undefined]
//   - every other scalar stays a string
//
// Anchors are decoded once and shared by their aliases, so an alias that
// refers back to an enclosing node yields a cyclic value. Empty text decodes
// to the empty string.
func DecodeValue(text string) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("decode %q: %w", text, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return text, nil
	}

	d := &decoder{anchored: make(map[*yaml.Node]any)}
	v, err := d.node(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", text, err)
	}
	return v, nil
}

type decoder struct {
	anchored map[*yaml.Node]any
}

func (d *decoder) node(n *yaml.Node) (any, error) {
	if v, ok := d.anchored[n]; ok {
		return v, nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.node(n.Content[0])
	case yaml.AliasNode:
		return d.node(n.Alias)
	case yaml.SequenceNode:
		return d.sequence(n)
	case yaml.MappingNode:
		return d.mapping(n)
	default:
		v, err := scalar(n)
		if err == nil && n.Anchor != "" {
			d.anchored[n] = v
		}
		return v, err
	}
}

func (d *decoder) sequence(n *yaml.Node) (any, error) {
	// Sized up front so aliases to this node share its backing array.
	out := make([]any, len(n.Content))
	if n.Anchor != "" {
		d.anchored[n] = out
	}
	for i, c := range n.Content {
		v, err := d.node(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (d *decoder) mapping(n *yaml.Node) (any, error) {
	obj := format.NewObject()
	if n.Anchor != "" {
		d.anchored[n] = obj
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: %w", k.Line, ErrUnsupportedKey)
		}

		val, err := d.node(v)
		if err != nil {
			return nil, err
		}
		if k.Tag == "!!merge" {
			merge(obj, val)
			continue
		}
		obj.Set(k.Value, val)
	}
	return obj, nil
}

// merge copies keys from src, an Object or a sequence of Objects, that obj
// does not define yet.
func merge(obj *format.Object, src any) {
	switch s := src.(type) {
	case *format.Object:
		for pair := s.Oldest(); pair != nil; pair = pair.Next() {
			if _, exists := obj.Get(pair.Key); !exists {
				obj.Set(pair.Key, pair.Value)
			}
		}
	case []any:
		for _, item := range s {
			merge(obj, item)
		}
	}
}

func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		if b, ok := new(big.Int).SetString(n.Value, 0); ok {
			return b, nil
		}
		return n.Value, nil
	case "!!float":
		// Plain integers wider than 64 bits resolve as floats.
		if b, ok := bigInt(n); ok {
			return b, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		if n.Style == 0 && n.Value == "undefined" {
			return format.Undefined, nil
		}
		if b, ok := bigInt(n); ok {
			return b, nil
		}
		return n.Value, nil
	}
}

// bigInt parses a plain decimal integer, optionally written with the
// bigint suffix n as in 10n.
func bigInt(n *yaml.Node) (*big.Int, bool) {
	if n.Style != 0 {
		return nil, false
	}
	digits := strings.TrimSuffix(n.Value, "n")
	body := strings.TrimLeft(digits, "+-")
	if body == "" || len(digits)-len(body) > 1 || strings.Trim(body, "0123456789") != "" {
		return nil, false
	}
	return new(big.Int).SetString(digits, 10)
}
