// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/danielhkuo/menu-survey/flow"
	"github.com/danielhkuo/menu-survey/models"
)

const timeLayout = "2006-01-02 15:04:05"

// Fixed session metadata columns, before the per-question columns.
var metaColumns = []string{
	"session_id",
	"condition_type",
	"device_type",
	"started_at",
	"completed_at",
	"is_screened_out",
}

var metaLabels = map[string]string{
	"session_id":      "Session ID",
	"condition_type":  "Condition Type (ar_menu=1, menu_image_0=2, menu_image_1=3)",
	"device_type":     "Device Type (mobile=1, desktop=2)",
	"started_at":      "Started At",
	"completed_at":    "Completed At",
	"is_screened_out": "Screened Out (true=1, false=0)",
}

// WriteCSV writes the Qualtrics-style export: three header rows (field ids,
// human labels with encoding legends, import-id annotations) followed by
// one encoded data row per session. Question columns are every distinct
// question id observed across all responses, sorted lexicographically.
// Missing answers render as empty cells.
func WriteCSV(w io.Writer, sessions []models.Session, responses []models.Response) error {
	questionIDs := map[string]bool{}
	bySession := map[string]map[string]string{}
	for _, r := range responses {
		questionIDs[r.QuestionID] = true
		if bySession[r.SessionID] == nil {
			bySession[r.SessionID] = map[string]string{}
		}
		bySession[r.SessionID][r.QuestionID] = r.ResponseValue
	}

	sortedQuestionIDs := make([]string, 0, len(questionIDs))
	for id := range questionIDs {
		sortedQuestionIDs = append(sortedQuestionIDs, id)
	}
	sort.Strings(sortedQuestionIDs)

	columns := append(append([]string{}, metaColumns...), sortedQuestionIDs...)

	cw := csv.NewWriter(w)

	// Row 1: field IDs
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// Row 2: human-readable labels, annotated with encoding legends
	labels := make([]string, len(columns))
	for i, col := range columns {
		if label, ok := metaLabels[col]; ok {
			labels[i] = label
			continue
		}
		label := flow.QuestionText(col)
		if legend, ok := encodingLegend[col]; ok {
			label = label + " (" + legend + ")"
		}
		labels[i] = label
	}
	if err := cw.Write(labels); err != nil {
		return fmt.Errorf("failed to write labels: %w", err)
	}

	// Row 3: import IDs
	importIDs := make([]string, len(columns))
	for i, col := range columns {
		importIDs[i] = `{"ImportId":"` + col + `"}`
	}
	if err := cw.Write(importIDs); err != nil {
		return fmt.Errorf("failed to write import ids: %w", err)
	}

	// Data rows
	for _, sess := range sessions {
		row := make([]string, 0, len(columns))
		row = append(row,
			sess.ID,
			EncodeCondition(sess.ConditionType),
			EncodeDevice(sess.DeviceType),
			sess.StartedAt.UTC().Format(timeLayout),
			formatCompletedAt(&sess),
			formatScreenedOut(sess.IsScreenedOut),
		)
		answers := bySession[sess.ID]
		for _, qID := range sortedQuestionIDs {
			row = append(row, EncodeValue(qID, answers[qID]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write session row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCompletedAt(sess *models.Session) string {
	if sess.CompletedAt == nil {
		return ""
	}
	return sess.CompletedAt.UTC().Format(timeLayout)
}

func formatScreenedOut(screenedOut bool) string {
	if screenedOut {
		return "1"
	}
	return "0"
}
