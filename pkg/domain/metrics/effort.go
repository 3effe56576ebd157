// Package metrics contains the derived-metric calculations: effort
// aggregation, progress roll-up across the hierarchy, and the semaphore
// risk classifier. Every function is a pure transformation over an
// immutable snapshot; none performs I/O or returns an error.
package metrics

import (
	"math"

	"github.com/rmarchan/tablero/pkg/domain/team"
	"github.com/rmarchan/tablero/pkg/domain/tracking"
)

// EffortTotals are the four effort figures tracked per grouping. Values
// stay unrounded while aggregating; Rounded is applied once at the
// reporting boundary.
type EffortTotals struct {
	Estimated float64 `json:"estimated"`
	Corrected float64 `json:"corrected"`
	Completed float64 `json:"completed"`
	Weighted  float64 `json:"weighted"`
}

// Add returns the component-wise sum.
func (e EffortTotals) Add(o EffortTotals) EffortTotals {
	return EffortTotals{
		Estimated: e.Estimated + o.Estimated,
		Corrected: e.Corrected + o.Corrected,
		Completed: e.Completed + o.Completed,
		Weighted:  e.Weighted + o.Weighted,
	}
}

// Rounded returns the totals rounded to whole hours for display.
func (e EffortTotals) Rounded() EffortTotals {
	return EffortTotals{
		Estimated: math.Round(e.Estimated),
		Corrected: math.Round(e.Corrected),
		Completed: math.Round(e.Completed),
		Weighted:  math.Round(e.Weighted),
	}
}

// taskEffort computes one leaf task's contribution. Stories carry no
// direct effort and contribute zero.
func taskEffort(item *tracking.WorkItem, weights *team.WeightingTable) EffortTotals {
	if item.IsStory() {
		return EffortTotals{}
	}
	completed := item.CompletedHours.Value()
	return EffortTotals{
		Estimated: item.EstimatedHours.Value(),
		Corrected: item.CorrectedEstimate().Value(),
		Completed: completed,
		Weighted:  completed * weights.Factor(item.Assignee()),
	}
}

// StoryEffort totals one story's child tasks; a story that is itself a
// leaf counts its own figures.
func StoryEffort(story *tracking.WorkItem, weights *team.WeightingTable) EffortTotals {
	totals := taskEffort(story, weights)
	for i := range story.Children {
		totals = totals.Add(taskEffort(&story.Children[i], weights))
	}
	return totals
}

// Aggregate reduces a collection of stories to unrounded effort totals.
// The reduction is associative and commutative: regrouping or reordering
// the stories never changes the result.
func Aggregate(stories []tracking.WorkItem, weights *team.WeightingTable) EffortTotals {
	var totals EffortTotals
	for i := range stories {
		totals = totals.Add(StoryEffort(&stories[i], weights))
	}
	return totals
}

// TeamEstimate groups original estimated hours by assignee. Summing the
// returned map equals Aggregate(...).Estimated over the same stories.
func TeamEstimate(stories []tracking.WorkItem) map[string]float64 {
	byAssignee := make(map[string]float64)
	var walk func(item *tracking.WorkItem)
	walk = func(item *tracking.WorkItem) {
		if item.IsStory() {
			for i := range item.Children {
				walk(&item.Children[i])
			}
			return
		}
		byAssignee[item.Assignee()] += item.EstimatedHours.Value()
	}
	for i := range stories {
		walk(&stories[i])
	}
	return byAssignee
}
