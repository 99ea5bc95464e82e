// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package format renders arbitrary Go values as compact, human-readable text.
//
// Every call produces two renderings from one pass: Styled, with terminal
// styling codes chosen per value category by a [Scheme], and Message, which
// is exactly Styled with its SGR styling codes removed. All other bytes,
// invalid UTF-8 included, are kept.
//
// Rendering rules in brief:
//   - nil pointers and nil interfaces print null; [Undefined] prints undefined
//   - top-level strings print as is; nested strings are quoted, as in { name: 'x' }
//   - slices and arrays print as [ 1, 2 ]; empty ones as [ ]
//   - structs print with their type name, as in Point { x: 1, y: 2 }
//   - Go maps print with sorted keys; [Object] keeps insertion order
//   - errors print as Kind: message; an error held in an unexported struct
//     field cannot be called and prints as [Kind]
//   - a value reached again through its own contents prints [Circular TypeName]
//
// Cycle detection tracks the identities on the current path only, so the same
// value appearing twice side by side is printed twice, and every top-level
// call starts with empty state.
package format
