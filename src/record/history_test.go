// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package record_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/valuelog/src/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) record.Record {
	s := strconv.Itoa(n)
	return record.New(record.Info, int64(n), s, s)
}

func messages(h *record.History) []string {
	var out []string
	for _, r := range h.Records() {
		out = append(out, r.Message())
	}
	return out
}

func TestHistory(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "KeepsMostRecent",
			testFunc: func(t *testing.T) {
				h := record.NewHistory(3)
				for i := 1; i <= 5; i++ {
					h.Append(numbered(i))
				}
				assert.Equal(t, []string{"3", "4", "5"}, messages(h))
				assert.Equal(t, 3, h.Len())
			},
		},
		{
			name: "LengthIsMinOfAppendsAndLimit",
			testFunc: func(t *testing.T) {
				for _, limit := range []int{0, 1, 4, 10} {
					for n := range 8 {
						h := record.NewHistory(limit)
						for i := 1; i <= n; i++ {
							h.Append(numbered(i))
						}
						want := min(n, limit)
						require.Equal(t, want, h.Len(), "limit=%d appends=%d", limit, n)

						recs := h.Records()
						for i, r := range recs {
							assert.Equal(t, int64(n-want+i+1), r.Timestamp())
						}
					}
				}
			},
		},
		{
			name: "NegativeLimitUsesDefault",
			testFunc: func(t *testing.T) {
				assert.Equal(t, record.DefaultHistoryLimit, record.NewHistory(-1).Limit())
			},
		},
		{
			name: "ShrinkEvictsImmediately",
			testFunc: func(t *testing.T) {
				h := record.NewHistory(10)
				for i := 1; i <= 6; i++ {
					h.Append(numbered(i))
				}
				require.True(t, h.SetLimit(2))
				assert.Equal(t, []string{"5", "6"}, messages(h))

				h.Append(numbered(7))
				assert.Equal(t, []string{"6", "7"}, messages(h))
			},
		},
		{
			name: "GrowKeepsRecords",
			testFunc: func(t *testing.T) {
				h := record.NewHistory(2)
				h.Append(numbered(1))
				h.Append(numbered(2))
				require.True(t, h.SetLimit(5))
				h.Append(numbered(3))
				assert.Equal(t, []string{"1", "2", "3"}, messages(h))
			},
		},
		{
			name: "NegativeSetLimitIsIgnored",
			testFunc: func(t *testing.T) {
				h := record.NewHistory(4)
				h.Append(numbered(1))
				assert.False(t, h.SetLimit(-3))
				assert.Equal(t, 4, h.Limit())
				assert.Equal(t, 1, h.Len())
				assert.Equal(t, int64(1), h.Stats().Rejected)
			},
		},
		{
			name: "ZeroLimitRetainsNothing",
			testFunc: func(t *testing.T) {
				h := record.NewHistory(0)
				h.Append(numbered(1))
				assert.Zero(t, h.Len())
			},
		},
		{
			name: "Clear",
			testFunc: func(t *testing.T) {
				h := record.NewHistory(5)
				h.Append(numbered(1))
				h.Append(numbered(2))
				h.Clear()
				assert.Zero(t, h.Len())
				assert.Empty(t, h.Records())
				assert.Equal(t, 5, h.Limit())
			},
		},
		{
			name: "RecordsIsSnapshot",
			testFunc: func(t *testing.T) {
				h := record.NewHistory(5)
				h.Append(numbered(1))
				snap := h.Records()
				snap[0] = numbered(99)
				assert.Equal(t, []string{"1"}, messages(h))
			},
		},
		{
			name: "EachStopsEarly",
			testFunc: func(t *testing.T) {
				h := record.NewHistory(5)
				for i := 1; i <= 4; i++ {
					h.Append(numbered(i))
				}
				var seen []int
				h.Each(func(i int, r record.Record) bool {
					seen = append(seen, i)
					return i < 1
				})
				assert.Equal(t, []int{0, 1}, seen)
			},
		},
		{
			name: "Stats",
			testFunc: func(t *testing.T) {
				h := record.NewHistory(3)
				for i := 1; i <= 5; i++ {
					h.Append(numbered(i))
				}
				h.SetLimit(1)
				h.Clear()

				s := h.Stats()
				assert.Equal(t, int64(5), s.Appended)
				assert.Equal(t, int64(4), s.Evicted)
				assert.Equal(t, int64(1), s.Shrinking)
				assert.Equal(t, int64(1), s.Cleared)
				assert.Zero(t, s.Size)
				assert.Equal(t, 1, s.Limit)

				out := s.String()
				assert.Contains(t, out, "History Statistics:")
				assert.Contains(t, out, "Size: 0/1 records")
				assert.Contains(t, out, "Evictions: 4 (1 by shrinking the limit)")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestHistory_Concurrent(t *testing.T) {
	h := record.NewHistory(100)

	const goroutines = 10
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := range goroutines {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range perGoroutine {
				h.Append(numbered(g*perGoroutine + i))
				_ = h.Len()
				_ = h.Records()
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 100, h.Len())
	assert.Equal(t, int64(goroutines*perGoroutine), h.Stats().Appended)
}

func BenchmarkHistory_Append(b *testing.B) {
	h := record.NewHistory(record.DefaultHistoryLimit)
	r := numbered(1)

	b.ReportAllocs()
	for b.Loop() {
		h.Append(r)
	}
}
