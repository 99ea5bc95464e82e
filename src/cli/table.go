// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/valuelog/src/record"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const tableTimeLayout = "2006-01-02 15:04:05.000"

var cellReplacer = strings.NewReplacer("|", `\|`, "\r", "", "\n", `\n`)

// RenderHistory renders records as a markdown table, oldest first.
// Messages are shown plain, with newlines and pipes escaped to keep one row per record.
func RenderHistory(records []record.Record, loc *time.Location) (string, error) {
	if len(records) == 0 {
		return "No records to display\n", nil
	}
	if loc == nil {
		loc = time.Local
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Level", "Time", "Message"})

	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Severity().String(),
			r.Time().In(loc).Format(tableTimeLayout),
			cellReplacer.Replace(r.Message()),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return "", fmt.Errorf("render history: %w", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("render history: %w", err)
	}
	return buf.String(), nil
}
