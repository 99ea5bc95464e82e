// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the console facade that turns logging calls into
// Records, keeps a bounded history of them, notifies subscribers and prints
// them through a sink.
//
// Console is safe for concurrent use by multiple goroutines. Records enter the
// history in the order their calls acquired the console, and subscribers are
// notified outside the console lock so they may log themselves.
//
// Example usage:
//
//	console := logger.New(logger.WithHistoryLimit(100))
//	console.Subscribe(func(r record.Record) error {
//		return store.Save(r.Message())
//	})
//	console.Info("listening on", addr)
//	console.Warn("retrying", map[string]int{"attempt": 2})
//
// The package also defines the [Logger] interface used for plain diagnostic
// output, which Console implements.
package logger
