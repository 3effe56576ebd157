package metrics

import (
	"math"

	"github.com/rmarchan/tablero/pkg/domain/tracking"
)

// All hierarchy levels share one algorithmic shape: an estimate-weighted
// average of closure fractions. weightedChild is one child in that
// roll-up; rollUp is the single reducer every level goes through, which
// is what guarantees the cross-level consistency invariant.
type weightedChild struct {
	estimate float64
	fraction float64
}

// rollUp computes round(100 × Σ(fraction×estimate) / Σestimate), floored
// at 0 and defined as 0 when the total estimate is 0.
func rollUp(children []weightedChild) int {
	var totalEstimate, completedValue float64
	for _, c := range children {
		totalEstimate += c.estimate
		completedValue += c.fraction * c.estimate
	}
	return percent(completedValue, totalEstimate)
}

// percent returns round(100×num/den), 0 when den ≤ 0, never negative.
func percent(num, den float64) int {
	if den <= 0 {
		return 0
	}
	p := int(math.Round(num / den * 100))
	if p < 0 {
		return 0
	}
	return p
}

// TaskProgress is completed over estimated hours for a single leaf task.
// A task with no estimate has no measurable progress, not 100%.
func TaskProgress(item *tracking.WorkItem) int {
	return percent(item.CompletedHours.Value(), item.EstimatedHours.Value())
}

// storyClosure returns a story's closure fraction and its total estimate.
// Progress is estimate-weighted by closure: a closed task counts its full
// original estimate toward done regardless of hours actually logged.
func storyClosure(tasks []tracking.WorkItem) (fraction, estimate float64) {
	var closed float64
	for i := range tasks {
		est := tasks[i].EstimatedHours.Value()
		estimate += est
		if tasks[i].IsClosed() {
			closed += est
		}
	}
	if estimate <= 0 {
		return 0, 0
	}
	return closed / estimate, estimate
}

// StoryProgress is the closure-weighted percentage over a story's tasks.
func StoryProgress(tasks []tracking.WorkItem) int {
	fraction, estimate := storyClosure(tasks)
	return percent(fraction*estimate, estimate)
}

// DeliverableProgress rolls stories up into one percentage, each story
// weighted by its total estimated hours.
func DeliverableProgress(stories []tracking.WorkItem) int {
	children := make([]weightedChild, 0, len(stories))
	for i := range stories {
		_, estimate := storyClosure(stories[i].Children)
		children = append(children, weightedChild{
			estimate: estimate,
			fraction: float64(StoryProgress(stories[i].Children)) / 100,
		})
	}
	return rollUp(children)
}

// StageProgress is the identical roll-up one level higher: every story of
// every deliverable, weighted by story estimate.
func StageProgress(deliverableStories [][]tracking.WorkItem) int {
	var children []weightedChild
	for _, stories := range deliverableStories {
		for i := range stories {
			_, estimate := storyClosure(stories[i].Children)
			children = append(children, weightedChild{
				estimate: estimate,
				fraction: float64(StoryProgress(stories[i].Children)) / 100,
			})
		}
	}
	return rollUp(children)
}

// OverallProgress is the project-wide roll-up across every story
// regardless of stage or deliverable grouping. Exact closure fractions
// are used here, so the result matches a flat closed-estimate over
// total-estimate computation.
func OverallProgress(stories []tracking.WorkItem) int {
	children := make([]weightedChild, 0, len(stories))
	for i := range stories {
		fraction, estimate := storyClosure(stories[i].Children)
		children = append(children, weightedChild{estimate: estimate, fraction: fraction})
	}
	return rollUp(children)
}
