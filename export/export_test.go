// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/menu-survey/models"
)

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		name       string
		questionID string
		value      string
		expected   string
	}{
		{"yes/no yes", "Q1", "yes", "1"},
		{"yes/no no", "Q2", "no", "0"},
		{"yes/no case-insensitive", "Q25", "Yes", "1"},
		{"true/false true", "Q11", "true", "1"},
		{"true/false false", "Q13", "false", "0"},
		{"gender female", "Q18", "female", "2"},
		{"gender prefer-not", "Q18", "prefer-not", "4"},
		{"decision time shortest", "Q6c", "less_than_30s", "1"},
		{"decision time longest", "Q6c", "more_than_5min", "5"},
		{"AR extent", "Q26", "very_frequently", "5"},
		{"likert passes through", "Q4", "5", "5"},
		{"slider passes through", "Q10", "85", "85"},
		{"qualitative passes through", "Q14", "the photos were great", "the photos were great"},
		{"menu item passes through", "Q3", "Classic Burger", "Classic Burger"},
		{"unknown categorical passes through", "Q18", "something-else", "something-else"},
		{"skip sentinel survives", "Q1", models.SkippedValue, models.SkippedValue},
		{"missing answer is empty", "Q18", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeValue(tt.questionID, tt.value)
			if got != tt.expected {
				t.Errorf("EncodeValue(%q, %q) = %q, expected %q", tt.questionID, tt.value, got, tt.expected)
			}
		})
	}
}

func TestEncodeSessionMetadata(t *testing.T) {
	if got := EncodeCondition("ar_menu"); got != "1" {
		t.Errorf("Expected ar_menu = 1, got %q", got)
	}
	if got := EncodeCondition("menu_image_1"); got != "3" {
		t.Errorf("Expected menu_image_1 = 3, got %q", got)
	}
	if got := EncodeCondition("pilot_condition"); got != "pilot_condition" {
		t.Errorf("Expected unknown condition to pass through, got %q", got)
	}
	if got := EncodeDevice("mobile"); got != "1" {
		t.Errorf("Expected mobile = 1, got %q", got)
	}
	if got := EncodeDevice("desktop"); got != "2" {
		t.Errorf("Expected desktop = 2, got %q", got)
	}
}

func TestWriteCSV(t *testing.T) {
	started := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	completed := started.Add(12 * time.Minute)

	sessions := []models.Session{
		{
			ID:            "sess-1",
			ConditionType: "ar_menu",
			DeviceType:    "mobile",
			StartedAt:     started,
			CompletedAt:   &completed,
		},
		{
			ID:            "sess-2",
			ConditionType: "menu_image_0",
			DeviceType:    "desktop",
			StartedAt:     started.Add(time.Hour),
			IsScreenedOut: true,
		},
	}
	responses := []models.Response{
		{SessionID: "sess-1", QuestionID: "Q1", ResponseValue: "yes"},
		{SessionID: "sess-1", QuestionID: "Q18", ResponseValue: "female"},
		{SessionID: "sess-1", QuestionID: "Q14", ResponseValue: "loved it, especially the photos"},
		{SessionID: "sess-2", QuestionID: "Q1", ResponseValue: "no"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, sessions, responses); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Export is not valid CSV: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("Expected 3 header rows + 2 data rows, got %d rows", len(rows))
	}

	// Row 1: field IDs - metadata first, then sorted question columns
	header := rows[0]
	expected := []string{
		"session_id", "condition_type", "device_type",
		"started_at", "completed_at", "is_screened_out",
		"Q1", "Q14", "Q18",
	}
	if len(header) != len(expected) {
		t.Fatalf("Expected %d columns, got %d: %v", len(expected), len(header), header)
	}
	for i, col := range expected {
		if header[i] != col {
			t.Errorf("Column %d: expected %q, got %q", i, col, header[i])
		}
	}

	// Row 2: labels carry the encoding legends
	labels := rows[1]
	if !strings.Contains(labels[1], "ar_menu=1") {
		t.Errorf("Expected condition legend in label row, got %q", labels[1])
	}
	if !strings.Contains(labels[6], "yes=1, no=0") {
		t.Errorf("Expected yes/no legend on Q1 label, got %q", labels[6])
	}
	if !strings.Contains(labels[8], "female=2") {
		t.Errorf("Expected gender legend on Q18 label, got %q", labels[8])
	}
	if !strings.Contains(labels[6], "18 or older") {
		t.Errorf("Expected question text on Q1 label, got %q", labels[6])
	}

	// Row 3: import IDs
	if rows[2][0] != `{"ImportId":"session_id"}` {
		t.Errorf("Unexpected import id cell: %q", rows[2][0])
	}
	if rows[2][6] != `{"ImportId":"Q1"}` {
		t.Errorf("Unexpected import id cell: %q", rows[2][6])
	}

	// Data row for sess-1: encoded metadata and answers
	row1 := rows[3]
	if row1[0] != "sess-1" {
		t.Errorf("Expected sess-1, got %q", row1[0])
	}
	if row1[1] != "1" || row1[2] != "1" {
		t.Errorf("Expected encoded condition/device 1/1, got %q/%q", row1[1], row1[2])
	}
	if row1[3] != "2025-03-10 14:30:00" {
		t.Errorf("Unexpected started_at format: %q", row1[3])
	}
	if row1[4] != "2025-03-10 14:42:00" {
		t.Errorf("Unexpected completed_at: %q", row1[4])
	}
	if row1[5] != "0" {
		t.Errorf("Expected is_screened_out 0, got %q", row1[5])
	}
	if row1[6] != "1" {
		t.Errorf("Expected Q1 encoded to 1, got %q", row1[6])
	}
	if row1[7] != "loved it, especially the photos" {
		t.Errorf("Expected free text preserved through quoting, got %q", row1[7])
	}
	if row1[8] != "2" {
		t.Errorf("Expected Q18 encoded to 2, got %q", row1[8])
	}

	// Data row for sess-2: missing answers are empty cells, open session has
	// no completed_at
	row2 := rows[4]
	if row2[4] != "" {
		t.Errorf("Expected empty completed_at, got %q", row2[4])
	}
	if row2[5] != "1" {
		t.Errorf("Expected is_screened_out 1, got %q", row2[5])
	}
	if row2[6] != "0" {
		t.Errorf("Expected Q1 encoded to 0, got %q", row2[6])
	}
	if row2[7] != "" || row2[8] != "" {
		t.Errorf("Expected empty cells for missing answers, got %q/%q", row2[7], row2[8])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil, nil); err != nil {
		t.Fatalf("WriteCSV failed on empty input: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Export is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected the 3 header rows only, got %d rows", len(rows))
	}
	if len(rows[0]) != 6 {
		t.Errorf("Expected 6 metadata columns, got %d", len(rows[0]))
	}
}
