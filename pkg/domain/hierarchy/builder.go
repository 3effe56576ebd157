// Package hierarchy groups the flat work-item snapshot into the
// stage → deliverable → story tree using typed tag records. Grouping is
// deterministic, never fatal, and records ambiguous classifications as
// diagnostics instead of resolving them silently.
package hierarchy

import (
	"fmt"
	"sort"

	"github.com/rmarchan/tablero/pkg/domain/tracking"
)

// UnclassifiedDeliverable groups stories that carry a stage tag but no
// deliverable tag. It always sorts last within its stage.
const UnclassifiedDeliverable = -1

// Range is an inclusive deliverable-number interval.
type Range struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

// Contains reports whether n falls inside the range.
func (r Range) Contains(n int) bool { return n >= r.Start && n <= r.End }

// Stage is static reference data: a top-level phase spanning a configured
// range of deliverable numbers.
type Stage struct {
	ID               int           `yaml:"id" json:"id"`
	Name             string        `yaml:"name" json:"name"`
	DeliverableRange Range         `yaml:"deliverable_range" json:"deliverable_range"`
	StartDate        tracking.Date `yaml:"start_date" json:"start_date"`
	DueDate          tracking.Date `yaml:"due_date" json:"due_date"`
}

// DeliverableSchedule maps deliverable numbers to their start and due
// dates. Static configuration, loaded once per session.
type DeliverableSchedule struct {
	StartDates map[int]tracking.Date `yaml:"start_dates" json:"start_dates"`
	DueDates   map[int]tracking.Date `yaml:"due_dates" json:"due_dates"`
}

// Deliverable owns an ordered sequence of stories within a stage.
type Deliverable struct {
	Number    int                 `json:"number"`
	StartDate tracking.Date       `json:"start_date"`
	DueDate   tracking.Date       `json:"due_date"`
	Stories   []tracking.WorkItem `json:"stories"`
}

// StageGroup pairs a stage with its grouped deliverables.
type StageGroup struct {
	Stage        Stage         `json:"stage"`
	Deliverables []Deliverable `json:"deliverables"`
}

// StoryCount returns the number of stories across the stage's deliverables.
func (g *StageGroup) StoryCount() int {
	n := 0
	for _, d := range g.Deliverables {
		n += len(d.Stories)
	}
	return n
}

// StoryGroups returns the stage's stories grouped per deliverable, the
// shape the stage-level progress roll-up consumes.
func (g *StageGroup) StoryGroups() [][]tracking.WorkItem {
	groups := make([][]tracking.WorkItem, 0, len(g.Deliverables))
	for _, d := range g.Deliverables {
		groups = append(groups, d.Stories)
	}
	return groups
}

// Diagnostic records an ambiguous classification that was resolved by the
// deterministic first-match policy but deserves review.
type Diagnostic struct {
	ItemID  int      `json:"item_id"`
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Tags    []string `json:"tags,omitempty"`
}

const (
	DiagnosticAmbiguousStage       = "ambiguous_stage"
	DiagnosticAmbiguousDeliverable = "ambiguous_deliverable"
)

// Result is the built tree plus everything that did not fit in it.
type Result struct {
	Stages      []StageGroup        `json:"stages"`
	Unstaged    []tracking.WorkItem `json:"unstaged,omitempty"`
	Other       []tracking.WorkItem `json:"other,omitempty"`
	Diagnostics []Diagnostic        `json:"diagnostics,omitempty"`
}

// AllStories returns every staged story in stage/deliverable order.
func (r *Result) AllStories() []tracking.WorkItem {
	var out []tracking.WorkItem
	for _, sg := range r.Stages {
		for _, d := range sg.Deliverables {
			out = append(out, d.Stories...)
		}
	}
	return out
}

// Builder groups work items under a stage configuration.
type Builder struct {
	stages   []Stage
	schedule DeliverableSchedule
	allowed  map[string]struct{}
}

// DefaultStoryTypes are the work-item types eligible for hierarchy
// placement as stories.
var DefaultStoryTypes = []string{tracking.TypeUserStory}

// NewBuilder creates a builder. A nil storyTypes slice means
// DefaultStoryTypes.
func NewBuilder(stages []Stage, schedule DeliverableSchedule, storyTypes []string) *Builder {
	if storyTypes == nil {
		storyTypes = DefaultStoryTypes
	}
	allowed := make(map[string]struct{}, len(storyTypes))
	for _, t := range storyTypes {
		allowed[t] = struct{}{}
	}
	return &Builder{stages: stages, schedule: schedule, allowed: allowed}
}

// eligible reports whether an item belongs in the hierarchy: a story-like
// type, or a loose leaf that carries logged hours.
func (b *Builder) eligible(item *tracking.WorkItem) bool {
	if _, ok := b.allowed[item.Type]; ok {
		return true
	}
	return !item.IsStory() && item.CompletedHours > 0
}

// Build groups the flat item list into stages and deliverables. Items of
// non-eligible types land in Other; eligible items without a resolvable
// stage land in Unstaged.
func (b *Builder) Build(items []tracking.WorkItem) Result {
	res := Result{}

	type bucket map[int][]tracking.WorkItem // deliverable number → stories
	staged := make(map[int]bucket)          // stage id → bucket

	for i := range items {
		item := items[i]
		if !b.eligible(&item) {
			res.Other = append(res.Other, item)
			continue
		}

		tags := tracking.ParseTags(item.Tags)
		stageTags := tracking.TagsOfKind(tags, tracking.TagStage)
		delivTags := tracking.TagsOfKind(tags, tracking.TagDeliverable)

		if len(stageTags) > 1 {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				ItemID:  item.ID,
				Kind:    DiagnosticAmbiguousStage,
				Message: fmt.Sprintf("%d stage tags; using first in tracker order", len(stageTags)),
				Tags:    rawTags(stageTags),
			})
		}
		if len(delivTags) > 1 {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				ItemID:  item.ID,
				Kind:    DiagnosticAmbiguousDeliverable,
				Message: fmt.Sprintf("%d deliverable tags; using first in tracker order", len(delivTags)),
				Tags:    rawTags(delivTags),
			})
		}

		deliverable := UnclassifiedDeliverable
		if len(delivTags) > 0 {
			deliverable = delivTags[0].Number
		}

		stage := b.resolveStage(stageTags, deliverable)
		if stage == nil {
			res.Unstaged = append(res.Unstaged, item)
			continue
		}

		if staged[stage.ID] == nil {
			staged[stage.ID] = make(bucket)
		}
		staged[stage.ID][deliverable] = append(staged[stage.ID][deliverable], item)
	}

	for _, st := range b.stages {
		group := StageGroup{Stage: st}
		for number, stories := range staged[st.ID] {
			group.Deliverables = append(group.Deliverables, Deliverable{
				Number:    number,
				StartDate: b.schedule.StartDates[number],
				DueDate:   b.schedule.DueDates[number],
				Stories:   stories,
			})
		}
		sortDeliverables(group.Deliverables)
		res.Stages = append(res.Stages, group)
	}

	return res
}

// resolveStage picks the first stage tag that names a configured stage;
// lacking one, it infers the stage whose deliverable range contains the
// deliverable number.
func (b *Builder) resolveStage(stageTags []tracking.Tag, deliverable int) *Stage {
	for _, t := range stageTags {
		for i := range b.stages {
			if b.stages[i].ID == t.Number {
				return &b.stages[i]
			}
		}
	}
	if deliverable != UnclassifiedDeliverable {
		for i := range b.stages {
			if b.stages[i].DeliverableRange.Contains(deliverable) {
				return &b.stages[i]
			}
		}
	}
	return nil
}

// sortDeliverables orders ascending by number with the unclassified
// sentinel last regardless of numeric ordering.
func sortDeliverables(ds []Deliverable) {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Number == UnclassifiedDeliverable {
			return false
		}
		if ds[j].Number == UnclassifiedDeliverable {
			return true
		}
		return ds[i].Number < ds[j].Number
	})
}

func rawTags(tags []tracking.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Raw)
	}
	return out
}
