package metrics

import (
	"math"

	"github.com/rmarchan/tablero/pkg/domain/schedule"
	"github.com/rmarchan/tablero/pkg/domain/team"
	"github.com/rmarchan/tablero/pkg/domain/tracking"
)

// DeliveryRisk signals whether a grouping is likely to meet its due date.
type DeliveryRisk string

const (
	// DeliveryOnTrack: consumption is at or under budget, or the date was met.
	DeliveryOnTrack DeliveryRisk = "on_track"
	// DeliveryBehind: weighted consumption trails the original estimate.
	DeliveryBehind DeliveryRisk = "behind"
	// DeliveryAtRisk: behind with an imminent deadline, or already overdue.
	// Shares red severity with behind; the label flags the deadline.
	DeliveryAtRisk DeliveryRisk = "at_risk"
)

// ConsumptionRisk is the three-way sign of weighted-vs-estimated hours.
type ConsumptionRisk string

const (
	ConsumptionOver    ConsumptionRisk = "over_consumed"
	ConsumptionUnder   ConsumptionRisk = "under_consumed"
	ConsumptionAtLimit ConsumptionRisk = "at_limit"
)

// SemaphoreMetrics are the accumulated figures behind the two signals.
type SemaphoreMetrics struct {
	ProgressPercent    int     `json:"progress_percent"`
	ConsumptionPercent float64 `json:"consumption_percent"`
	EstimatedHours     float64 `json:"estimated_hours"`
	WeightedHours      float64 `json:"weighted_hours"`
	EstimatedToDate    float64 `json:"estimated_to_date"`
	WeightedToDate     float64 `json:"weighted_to_date"`
	AheadOfSchedule    float64 `json:"ahead_of_schedule"`
	HoursDifference    float64 `json:"hours_difference"`
	DaysRemaining      int     `json:"days_remaining"`
}

// SemaphoreResult pairs the two independent risk signals with their inputs.
type SemaphoreResult struct {
	Delivery    DeliveryRisk     `json:"delivery"`
	Consumption ConsumptionRisk  `json:"consumption"`
	Metrics     SemaphoreMetrics `json:"metrics"`
}

// Classifier derives semaphore signals for story groups. The weighting
// table is captured at construction so one classification pass observes a
// single consistent snapshot of it.
type Classifier struct {
	weights *team.WeightingTable
	calc    *schedule.Calculator
}

// NewClassifier builds a classifier over a weighting table snapshot and a
// business-day calculator.
func NewClassifier(weights *team.WeightingTable, calc *schedule.Calculator) *Classifier {
	return &Classifier{weights: weights, calc: calc}
}

// Classify derives delivery and consumption risk for a group of stories
// against a due date.
//
// The consumption baseline deliberately uses the ORIGINAL estimate while
// the to-date pacing sums use the corrected one: the original acts as the
// stable budget, the corrected estimate tracks day-by-day pacing.
func (c *Classifier) Classify(stories []tracking.WorkItem, due tracking.Date) SemaphoreResult {
	today := c.calc.Today()

	var m SemaphoreMetrics
	for si := range stories {
		story := &stories[si]
		for ti := range story.Children {
			task := &story.Children[ti]

			estimated := task.EstimatedHours.Value()
			weighted := task.CompletedHours.Value() * c.weights.Factor(task.Assignee())

			// Totals accumulate over every task regardless of date.
			m.EstimatedHours += estimated
			m.WeightedHours += weighted

			effective := task.EffectiveDueDate(story)
			if effective.IsZero() {
				continue // date-less: counted in totals only
			}
			if effective.Midnight().After(today) {
				// Hours already logged against work not yet due.
				m.AheadOfSchedule += weighted
			} else {
				m.EstimatedToDate += task.CorrectedEstimate().Value()
				m.WeightedToDate += weighted
			}
		}
	}

	m.HoursDifference = m.WeightedHours - m.EstimatedHours
	if m.EstimatedHours > 0 {
		m.ConsumptionPercent = m.WeightedHours / m.EstimatedHours * 100
	}
	m.ProgressPercent = DeliverableProgress(stories)

	// A group without a due date carries no deadline pressure; only the
	// consumption trend can put it behind.
	delivery := DeliveryOnTrack
	if !due.IsZero() {
		m.DaysRemaining = c.calc.DaysUntilDelivery(due.Midnight())
		delivery = classifyDelivery(due.Midnight().Before(today), m.ProgressPercent, m.HoursDifference, m.DaysRemaining)
	} else if m.HoursDifference < 0 {
		delivery = DeliveryBehind
	}

	return SemaphoreResult{
		Delivery:    delivery,
		Consumption: ClassifyConsumption(m.HoursDifference),
		Metrics:     m,
	}
}

func classifyDelivery(pastDue bool, progressPercent int, hoursDifference float64, daysRemaining int) DeliveryRisk {
	if pastDue {
		if progressPercent >= 100 {
			return DeliveryOnTrack
		}
		return DeliveryAtRisk
	}
	if hoursDifference >= 0 {
		return DeliveryOnTrack
	}
	if daysRemaining <= 10 && progressPercent < 70 {
		return DeliveryAtRisk
	}
	return DeliveryBehind
}

// ClassifyConsumption is total over hoursDifference: exactly one label per
// value, with the at-limit boundary decided on the rounded total rather
// than a float-epsilon comparison.
func ClassifyConsumption(hoursDifference float64) ConsumptionRisk {
	switch rounded := math.Round(hoursDifference); {
	case rounded > 0:
		return ConsumptionOver
	case rounded < 0:
		return ConsumptionUnder
	default:
		return ConsumptionAtLimit
	}
}

// Severity returns red/yellow/green-style severity for display coloring.
func (r DeliveryRisk) Severity() string {
	switch r {
	case DeliveryOnTrack:
		return "green"
	default:
		return "red"
	}
}

// Severity for the consumption signal mirrors the upstream dashboard:
// over-consumption is red, under-consumption blue, at-limit yellow.
func (r ConsumptionRisk) Severity() string {
	switch r {
	case ConsumptionOver:
		return "red"
	case ConsumptionUnder:
		return "blue"
	default:
		return "yellow"
	}
}
