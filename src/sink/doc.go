// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package sink writes rendered log lines to their destinations.
//
// A [Sink] receives the Record together with the line the console built for it.
// Terminal sinks write the line as given; persistent sinks such as [File]
// write the plain message so stored logs never contain styling codes.
//
// Example usage:
//
//	file := sink.NewFile(sink.FileConfig{Path: "app.log", MaxSizeMB: 10})
//	defer file.Close()
//	console := logger.New(logger.WithSink(sink.Multi(sink.NewConsole(os.Stdout, os.Stderr), file)))
package sink
