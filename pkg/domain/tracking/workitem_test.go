package tracking_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rmarchan/tablero/pkg/domain/tracking"
)

func TestHours_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"number", `7`, 7},
		{"fraction", `12.5`, 12.5},
		{"numeric string", `"12.5"`, 12.5},
		{"string with spaces", `" 8 "`, 8},
		{"negative number", `-5`, 0},
		{"negative string", `"-5"`, 0},
		{"garbage string", `"abc"`, 0},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"object", `{"x":1}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h tracking.Hours
			if err := json.Unmarshal([]byte(tt.input), &h); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if h.Value() != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, h.Value(), tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantZero bool
		wantDay  string
	}{
		{"plain date", "2025-03-14", false, "2025-03-14"},
		{"datetime", "2025-03-14T10:30:00", false, "2025-03-14"},
		{"empty", "", true, ""},
		{"dash", "-", true, ""},
		{"null text", "null", true, ""},
		{"not available", "no disponible", true, ""},
		{"epoch sentinel", "1970-01-01T00:00:00Z", true, ""},
		{"garbage", "sometime soon", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tracking.ParseDate(tt.input)
			if d.IsZero() != tt.wantZero {
				t.Fatalf("ParseDate(%q).IsZero() = %v, want %v", tt.input, d.IsZero(), tt.wantZero)
			}
			if !tt.wantZero && d.Format("2006-01-02") != tt.wantDay {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, d.Format("2006-01-02"), tt.wantDay)
			}
		})
	}
}

func TestWorkItem_CorrectedEstimate(t *testing.T) {
	override := tracking.Hours(20)

	tests := []struct {
		name string
		item tracking.WorkItem
		want float64
	}{
		{"no override", tracking.WorkItem{EstimatedHours: 10}, 10},
		{"with override", tracking.WorkItem{EstimatedHours: 10, NewEstimate: &override}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.CorrectedEstimate().Value(); got != tt.want {
				t.Errorf("CorrectedEstimate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorkItem_EffectiveDueDate(t *testing.T) {
	parent := tracking.WorkItem{DueDate: tracking.NewDate(2025, time.May, 9)}

	task := tracking.WorkItem{}
	if got := task.EffectiveDueDate(&parent); got.Format("2006-01-02") != "2025-05-09" {
		t.Errorf("expected fallback to parent due date, got %v", got)
	}

	task.DueDate = tracking.NewDate(2025, time.April, 25)
	if got := task.EffectiveDueDate(&parent); got.Format("2006-01-02") != "2025-04-25" {
		t.Errorf("expected own due date to win, got %v", got)
	}

	orphan := tracking.WorkItem{}
	if got := orphan.EffectiveDueDate(nil); !got.IsZero() {
		t.Errorf("expected zero date for orphan, got %v", got)
	}
}

func TestWorkItem_IsStory(t *testing.T) {
	leaf := tracking.WorkItem{Type: tracking.TypeUserStory}
	if leaf.IsStory() {
		t.Error("item without children should not be a story")
	}

	parent := tracking.WorkItem{Children: []tracking.WorkItem{{ID: 2}}}
	if !parent.IsStory() {
		t.Error("item with children should be a story")
	}
}

func TestSnapshot_TolerantDecoding(t *testing.T) {
	raw := `{
		"id": "abc",
		"items": [
			{
				"id": 1,
				"title": "Login flow",
				"state": "Active",
				"type": "User Story",
				"due_date": "no disponible",
				"estimated_hours": "16",
				"completed_hours": null,
				"child_work_items": [
					{"id": 2, "title": "API", "state": "Closed", "type": "Task", "estimated_hours": -4, "completed_hours": "3.5"}
				]
			}
		]
	}`

	var s tracking.Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}

	item := s.Items[0]
	if !item.DueDate.IsZero() {
		t.Errorf("expected zero due date, got %v", item.DueDate)
	}
	if item.EstimatedHours.Value() != 16 {
		t.Errorf("estimated = %v, want 16", item.EstimatedHours.Value())
	}
	if item.CompletedHours.Value() != 0 {
		t.Errorf("completed = %v, want 0", item.CompletedHours.Value())
	}

	child := item.Children[0]
	if child.EstimatedHours.Value() != 0 {
		t.Errorf("negative estimate should clamp to 0, got %v", child.EstimatedHours.Value())
	}
	if child.CompletedHours.Value() != 3.5 {
		t.Errorf("completed = %v, want 3.5", child.CompletedHours.Value())
	}
}
