// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package record models logged events and the in-process structures that hold them.
// It provides:
//   - Record, the immutable result of one logging call, carrying both plain and styled text.
//   - Factory, which stamps the time and formats the call arguments into a Record.
//   - History, a size-bounded sequence of Records with strict FIFO eviction.
//   - Hub, a synchronous fan-out that delivers each new Record to its subscribers.
//
// History and Hub are safe for concurrent use by multiple goroutines.
package record
