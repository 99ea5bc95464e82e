// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package record

import (
	"fmt"
	"sync"
)

// DefaultHistoryLimit is the number of records retained when no limit is given.
const DefaultHistoryLimit = 50

// Stats tracks history usage.
type Stats struct {
	Size      int   // Current number of retained records
	Limit     int   // Maximum number of retained records
	Appended  int64 // Number of records ever appended
	Evicted   int64 // Number of records dropped by the limit
	Cleared   int64 // Number of records dropped by Clear
	Rejected  int64 // Number of negative limit assignments ignored
	Shrinking int64 // Number of limit changes that evicted records
}

// String returns a formatted summary of the statistics.
func (s Stats) String() string {
	retention := float64(100)
	if s.Appended > 0 {
		retention = float64(s.Size) / float64(s.Appended) * 100
	}

	return fmt.Sprintf("History Statistics:\n"+
		"  Size: %d/%d records\n"+
		"  Appended: %d\n"+
		"  Retention: %.1f%%\n"+
		"  Evictions: %d (%d by shrinking the limit)\n"+
		"  Cleared: %d\n"+
		"  Rejected Limits: %d",
		s.Size, s.Limit,
		s.Appended,
		retention,
		s.Evicted, s.Shrinking,
		s.Cleared,
		s.Rejected)
}

// History is a size-bounded, insertion-ordered sequence of Records.
// When the limit is exceeded the oldest records are evicted first.
type History struct {
	mu      sync.RWMutex
	records []Record
	limit   int
	stats   Stats
}

// NewHistory creates a History retaining at most limit records.
// A negative limit falls back to [DefaultHistoryLimit].
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Append adds r to the end, evicting from the front while the length exceeds the limit.
func (h *History) Append(r Record) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, r)
	h.stats.Appended++
	h.evict()
}

// evict drops the oldest records until the length is within the limit.
// The caller must hold the write lock.
func (h *History) evict() int {
	excess := len(h.records) - h.limit
	if excess <= 0 {
		return 0
	}
	clear(h.records[:excess])
	h.records = h.records[excess:]
	h.stats.Evicted += int64(excess)
	return excess
}

// SetLimit changes the limit. A negative n leaves the limit unchanged and
// reports false. Shrinking below the current length evicts immediately.
func (h *History) SetLimit(n int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n < 0 {
		h.stats.Rejected++
		return false
	}
	h.limit = n
	if h.evict() > 0 {
		h.stats.Shrinking++
		// Drop the evicted prefix from the backing array.
		h.records = append([]Record(nil), h.records...)
	}
	return true
}

// Limit returns the maximum number of retained records.
func (h *History) Limit() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.limit
}

// Len returns the number of retained records.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// Clear removes every record.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stats.Cleared += int64(len(h.records))
	h.records = nil
}

// Records returns a snapshot of the retained records, oldest first.
func (h *History) Records() []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Each calls fn for every retained record, oldest first, until fn returns false.
// fn runs against a snapshot, so it may log without deadlocking.
func (h *History) Each(fn func(i int, r Record) bool) {
	for i, r := range h.Records() {
		if !fn(i, r) {
			return
		}
	}
}

// Stats returns a copy of the usage counters.
func (h *History) Stats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s := h.stats
	s.Size = len(h.records)
	s.Limit = h.limit
	return s
}
