// Package tracking defines the work-item snapshot model ingested from an
// external tracker. All numeric effort fields tolerate missing or malformed
// input by coercing to zero; the rest of the system never sees NaN or a
// negative hour figure.
package tracking

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Well-known work item states as reported by the tracker.
const (
	StateNew     = "New"
	StateActive  = "Active"
	StateClosed  = "Closed"
	StateRemoved = "Removed"
)

// Well-known work item types.
const (
	TypeUserStory     = "User Story"
	TypeTask          = "Task"
	TypeQATask        = "QA Task"
	TypeTechnicalDebt = "Technical Debt"
	TypeBug           = "Bug"
)

// Hours is a non-negative effort figure in hours. Unmarshalling accepts
// numbers, numeric strings, null, or garbage; anything that is not a valid
// non-negative number becomes 0.
type Hours float64

// UnmarshalJSON coerces invalid or negative values to zero instead of
// failing, so a single malformed field never poisons a snapshot.
func (h *Hours) UnmarshalJSON(data []byte) error {
	*h = 0

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*h = clampHours(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*h = clampHours(v)
		}
		return nil
	}

	return nil
}

func clampHours(v float64) Hours {
	if v < 0 || v != v { // negative or NaN
		return 0
	}
	return Hours(v)
}

// Value returns the figure as a plain float64.
func (h Hours) Value() float64 { return float64(h) }

// Date is a calendar date that tolerates the invalid encodings trackers
// emit: empty strings, "-", the Unix epoch sentinel, or unparseable text
// all decode to the zero Date.
type Date struct {
	time.Time
}

// NewDate builds a Date truncated to midnight in the given location.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a tracker-supplied date string. Invalid input yields the
// zero Date, never an error.
func ParseDate(s string) Date {
	clean := strings.TrimSpace(s)
	switch strings.ToLower(clean) {
	case "", "-", "null", "undefined", "0", "no disponible", "not available":
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, clean, time.Local); err == nil {
			if t.Unix() == 0 {
				return Date{} // epoch sentinel means "no date"
			}
			return Date{t}
		}
	}
	return Date{}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// UnmarshalYAML lets the same tolerant parsing apply to configuration files.
func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return "-", nil
	}
	return d.Format("2006-01-02"), nil
}

// Midnight returns the date truncated to local midnight.
func (d Date) Midnight() time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.Local)
}

// WorkItem is a unit of tracked work: a story when it owns children, a leaf
// task otherwise. Snapshots are immutable; every derived view is a pure
// function over them.
type WorkItem struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	State          string     `json:"state"`
	Type           string     `json:"type"`
	AssignedTo     string     `json:"assigned_to,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	DueDate        Date       `json:"due_date,omitempty"`
	EstimatedHours Hours      `json:"estimated_hours"`
	NewEstimate    *Hours     `json:"new_estimate,omitempty"`
	CompletedHours Hours      `json:"completed_hours"`
	Children       []WorkItem `json:"child_work_items,omitempty"`
}

// IsStory reports whether the item owns child tasks.
func (w *WorkItem) IsStory() bool { return len(w.Children) > 0 }

// IsClosed reports whether the item is in the closed state.
func (w *WorkItem) IsClosed() bool { return w.State == StateClosed }

// CorrectedEstimate returns the estimate override when present, falling
// back to the original estimate.
func (w *WorkItem) CorrectedEstimate() Hours {
	if w.NewEstimate != nil {
		return *w.NewEstimate
	}
	return w.EstimatedHours
}

// Assignee returns the trimmed assignee name, empty when unset.
func (w *WorkItem) Assignee() string { return strings.TrimSpace(w.AssignedTo) }

// EffectiveDueDate resolves the item's own due date, falling back to the
// parent story's. The zero Date means the item is date-less.
func (w *WorkItem) EffectiveDueDate(parent *WorkItem) Date {
	if !w.DueDate.IsZero() {
		return w.DueDate
	}
	if parent != nil {
		return parent.DueDate
	}
	return Date{}
}

// Snapshot is one immutable fetch of the tracker's work items.
type Snapshot struct {
	ID        string     `json:"id"`
	Source    string     `json:"source,omitempty"`
	FetchedAt time.Time  `json:"fetched_at"`
	Items     []WorkItem `json:"items"`
}

// Stories returns the items that own children, in snapshot order.
func (s *Snapshot) Stories() []WorkItem {
	var out []WorkItem
	for _, it := range s.Items {
		if it.IsStory() {
			out = append(out, it)
		}
	}
	return out
}
