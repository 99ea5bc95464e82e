// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

// Category names the semantic role of a rendered token.
type Category string

const (
	CatDefault   Category = "default"
	CatBoolean   Category = "boolean"
	CatNumber    Category = "number"
	CatString    Category = "string"
	CatText      Category = "text"
	CatArray     Category = "array"
	CatObject    Category = "object"
	CatFunction  Category = "function"
	CatBigInt    Category = "bigint"
	CatSymbol    Category = "symbol"
	CatProperty  Category = "property"
	CatUndefined Category = "undefined"
	CatNull      Category = "null"
	CatCircular  Category = "circular"
	CatClass     Category = "class"
	CatError     Category = "error"
	CatTimestamp Category = "timestamp"

	// Severity categories color the whole printed line.
	CatInfo          Category = "info"
	CatWarn          Category = "warn"
	CatErrorSeverity Category = "error-severity"
)

// Scheme maps categories to terminal styling codes.
//
// A Scheme is read-only once built: [Scheme.With] returns a modified copy
// and the formatter never writes to the map it was given.
type Scheme struct{ codes map[Category]string }

var defaultCodes = map[Category]string{
	CatDefault:       "\x1b[0m",
	CatBoolean:       "\x1b[38;5;27m",
	CatNumber:        "\x1b[38;5;64m",
	CatString:        "\x1b[38;5;130m",
	CatText:          "\x1b[38;5;250m",
	CatArray:         "\x1b[38;5;248m",
	CatObject:        "\x1b[38;5;248m",
	CatFunction:      "\x1b[38;5;30m",
	CatBigInt:        "\x1b[38;5;179m",
	CatSymbol:        "\x1b[38;5;99m",
	CatProperty:      "\x1b[38;5;75m",
	CatUndefined:     "\x1b[38;5;240m",
	CatNull:          "\x1b[38;5;240m",
	CatCircular:      "\x1b[38;5;171m",
	CatClass:         "\x1b[38;5;30m",
	CatError:         "\x1b[38;5;88m",
	CatTimestamp:     "\x1b[38;5;240m",
	CatInfo:          "\x1b[38;5;28m",
	CatWarn:          "\x1b[38;5;100m",
	CatErrorSeverity: "\x1b[38;5;88m",
}

// DefaultScheme returns the 256-color scheme used when nothing else is configured.
func DefaultScheme() Scheme {
	codes := make(map[Category]string, len(defaultCodes))
	for cat, code := range defaultCodes {
		codes[cat] = code
	}
	return Scheme{codes: codes}
}

// NoColorScheme returns a scheme that maps every category to the empty string.
func NoColorScheme() Scheme { return Scheme{codes: map[Category]string{}} }

// Code returns the styling code for cat. Unknown categories use the text code.
func (s Scheme) Code(cat Category) string {
	if code, ok := s.codes[cat]; ok {
		return code
	}
	return s.codes[CatText]
}

// With returns a copy of s with cat mapped to code.
func (s Scheme) With(cat Category, code string) Scheme {
	codes := make(map[Category]string, len(s.codes)+1)
	for k, v := range s.codes {
		codes[k] = v
	}
	codes[cat] = code
	return Scheme{codes: codes}
}

// Colored reports whether any category produces a styling code.
func (s Scheme) Colored() bool {
	for _, code := range s.codes {
		if code != "" {
			return true
		}
	}
	return false
}
