// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sink

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/valuelog/src/record"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrNoPath is returned by [File.Write] when the sink has no file path.
var ErrNoPath = errors.New("file sink: no path configured")

// FileConfig configures a rotating log file.
type FileConfig struct {
	Path       string // File to write; rotated backups are kept next to it
	MaxSizeMB  int    // Size in megabytes before rotation (0 = 100)
	MaxBackups int    // Rotated files to keep (0 = keep all)
	MaxAgeDays int    // Days to keep rotated files (0 = no age limit)
	Compress   bool   // Gzip rotated files
	LocalTime  bool   // Use local time in backup file names instead of UTC
}

// File appends plain record messages to a size-rotated file.
//
// Each line has the form "<RFC3339 timestamp> <LEVEL> <message>". The
// timestamp is always UTC so files sort and compare consistently.
type File struct {
	mu  sync.Mutex
	log *lumberjack.Logger
}

// NewFile creates a File sink. The file is opened lazily on the first write.
func NewFile(cfg FileConfig) *File {
	return &File{log: &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  cfg.LocalTime,
	}}
}

// Path returns the file being written.
func (f *File) Path() string { return f.log.Filename }

// Write appends the plain message of r. The styled line is ignored.
func (f *File) Write(r record.Record, _ string) error {
	if f.log.Filename == "" {
		return ErrNoPath
	}

	line := fmt.Sprintf("%s %s %s\n",
		r.Time().UTC().Format(time.RFC3339Nano),
		levelText(r.Severity()),
		r.Message())

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.log.Write([]byte(line)); err != nil {
		return fmt.Errorf("file sink: %w", err)
	}
	return nil
}

// Rotate closes the current file and starts a new one.
func (f *File) Rotate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.log.Rotate()
}

// Close closes the current file.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.log.Close()
}

func levelText(s record.Severity) string {
	switch s {
	case record.Warn:
		return "WARN"
	case record.Error:
		return "ERROR"
	default:
		return "INFO"
	}
}
