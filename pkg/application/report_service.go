// Package application wires the pure domain calculations to the workspace
// repository and the tracker adapters.
package application

import (
	"time"

	"github.com/rmarchan/tablero/pkg/domain/hierarchy"
	"github.com/rmarchan/tablero/pkg/domain/metrics"
	"github.com/rmarchan/tablero/pkg/domain/schedule"
	"github.com/rmarchan/tablero/pkg/domain/team"
	"github.com/rmarchan/tablero/pkg/domain/tracking"
	"github.com/rmarchan/tablero/pkg/storage"
)

// StoryReport is one story row in the dashboard.
type StoryReport struct {
	ID         int                  `json:"id"`
	Title      string               `json:"title"`
	State      string               `json:"state"`
	AssignedTo string               `json:"assigned_to,omitempty"`
	DueDate    tracking.Date        `json:"due_date,omitempty"`
	Progress   int                  `json:"progress"`
	Effort     metrics.EffortTotals `json:"effort"`
}

// DeliverableReport is one deliverable with its semaphores.
type DeliverableReport struct {
	Number        int                     `json:"number"`
	StartDate     tracking.Date           `json:"start_date,omitempty"`
	DueDate       tracking.Date           `json:"due_date,omitempty"`
	Progress      int                     `json:"progress"`
	DaysRemaining int                     `json:"days_remaining"`
	Status        schedule.DeadlineStatus `json:"status"`
	Effort        metrics.EffortTotals    `json:"effort"`
	Semaphore     metrics.SemaphoreResult `json:"semaphore"`
	Stories       []StoryReport           `json:"stories"`
}

// StageReport is one stage with its rolled-up figures.
type StageReport struct {
	ID            int                  `json:"id"`
	Name          string               `json:"name"`
	StartDate     tracking.Date        `json:"start_date,omitempty"`
	DueDate       tracking.Date        `json:"due_date,omitempty"`
	Progress      int                  `json:"progress"`
	DaysRemaining int                  `json:"days_remaining"`
	Risk          schedule.StageRisk   `json:"risk"`
	Effort        metrics.EffortTotals `json:"effort"`
	Deliverables  []DeliverableReport  `json:"deliverables"`
}

// DashboardReport is the full derived view over one snapshot.
type DashboardReport struct {
	GeneratedAt     time.Time              `json:"generated_at"`
	SnapshotID      string                 `json:"snapshot_id,omitempty"`
	Source          string                 `json:"source,omitempty"`
	FetchedAt       time.Time              `json:"fetched_at"`
	OverallProgress int                    `json:"overall_progress"`
	TotalEffort     metrics.EffortTotals   `json:"total_effort"`
	Stages          []StageReport          `json:"stages"`
	Unstaged        []StoryReport          `json:"unstaged,omitempty"`
	OtherCount      int                    `json:"other_count"`
	Diagnostics     []hierarchy.Diagnostic `json:"diagnostics,omitempty"`
}

// ReportService derives dashboard reports from the stored snapshot and
// configuration. The clock is injectable so reports are reproducible.
type ReportService struct {
	repo *storage.FilesystemRepository
	now  func() time.Time
}

// NewReportService creates a report service. A nil now means time.Now.
func NewReportService(repo *storage.FilesystemRepository, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{repo: repo, now: now}
}

// BuildReport loads the workspace state and derives the full dashboard.
func (s *ReportService) BuildReport() (*DashboardReport, error) {
	snapshot, err := s.repo.LoadSnapshot()
	if err != nil {
		return nil, err
	}
	stagesCfg, err := s.repo.LoadStages()
	if err != nil {
		return nil, err
	}
	weights, err := s.repo.LoadWeightings()
	if err != nil {
		return nil, err
	}
	return ComposeReport(snapshot, stagesCfg, weights, s.now), nil
}

// ComposeReport is the pure composition: identical inputs and an identical
// clock produce an identical report.
func ComposeReport(snapshot *tracking.Snapshot, stagesCfg *storage.StagesConfig, weights *team.WeightingTable, now func() time.Time) *DashboardReport {
	calendar := schedule.NewHolidayCalendar(stagesCfg.Jurisdiction)
	calc := schedule.NewCalculator(calendar, now)
	classifier := metrics.NewClassifier(weights, calc)

	builder := hierarchy.NewBuilder(stagesCfg.Stages, stagesCfg.Schedule, nil)
	tree := builder.Build(snapshot.Items)

	report := &DashboardReport{
		GeneratedAt: now(),
		SnapshotID:  snapshot.ID,
		Source:      snapshot.Source,
		FetchedAt:   snapshot.FetchedAt,
		Diagnostics: tree.Diagnostics,
		OtherCount:  len(tree.Other),
	}

	allStories := tree.AllStories()
	report.OverallProgress = metrics.OverallProgress(allStories)
	report.TotalEffort = metrics.Aggregate(allStories, weights).Rounded()

	for _, sg := range tree.Stages {
		stageReport := StageReport{
			ID:        sg.Stage.ID,
			Name:      sg.Stage.Name,
			StartDate: sg.Stage.StartDate,
			DueDate:   sg.Stage.DueDate,
			Progress:  metrics.StageProgress(sg.StoryGroups()),
		}
		// A stage without a due date has no deadline to press against.
		if sg.Stage.DueDate.IsZero() {
			stageReport.Risk = schedule.RiskLow
		} else {
			stageReport.DaysRemaining = calc.DaysUntilDelivery(sg.Stage.DueDate.Midnight())
			stageReport.Risk = schedule.StageRiskFor(stageReport.DaysRemaining, sg.StoryCount())
		}

		var stageEffort metrics.EffortTotals
		for _, d := range sg.Deliverables {
			dr := composeDeliverable(d, weights, calc, classifier)
			stageEffort = stageEffort.Add(metrics.Aggregate(d.Stories, weights))
			stageReport.Deliverables = append(stageReport.Deliverables, dr)
		}
		stageReport.Effort = stageEffort.Rounded()

		report.Stages = append(report.Stages, stageReport)
	}

	for i := range tree.Unstaged {
		report.Unstaged = append(report.Unstaged, composeStory(&tree.Unstaged[i], weights))
	}

	return report
}

func composeDeliverable(d hierarchy.Deliverable, weights *team.WeightingTable, calc *schedule.Calculator, classifier *metrics.Classifier) DeliverableReport {
	dr := DeliverableReport{
		Number:    d.Number,
		StartDate: d.StartDate,
		DueDate:   d.DueDate,
		Progress:  metrics.DeliverableProgress(d.Stories),
		Effort:    metrics.Aggregate(d.Stories, weights).Rounded(),
		Semaphore: classifier.Classify(d.Stories, d.DueDate),
	}
	// Deliverables without a scheduled date (the unclassified bucket and
	// numbers missing from the schedule) never count as overdue.
	if d.DueDate.IsZero() {
		dr.Status = schedule.StatusUnscheduled
	} else {
		dr.DaysRemaining = calc.DaysUntilDelivery(d.DueDate.Midnight())
		dr.Status = schedule.StatusFor(dr.DaysRemaining, dr.Progress)
	}

	for i := range d.Stories {
		dr.Stories = append(dr.Stories, composeStory(&d.Stories[i], weights))
	}
	return dr
}

func composeStory(story *tracking.WorkItem, weights *team.WeightingTable) StoryReport {
	return StoryReport{
		ID:         story.ID,
		Title:      story.Title,
		State:      story.State,
		AssignedTo: story.Assignee(),
		DueDate:    story.DueDate,
		Progress:   metrics.StoryProgress(story.Children),
		Effort:     metrics.Aggregate([]tracking.WorkItem{*story}, weights).Rounded(),
	}
}
