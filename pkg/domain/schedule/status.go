package schedule

// DeadlineStatus grades how a grouping stands against its due date.
type DeadlineStatus string

const (
	// StatusMet means the date arrived with the work complete.
	StatusMet DeadlineStatus = "met"
	// StatusOverdue means the date arrived with work outstanding.
	StatusOverdue DeadlineStatus = "overdue"
	// StatusNearCritical means a week or less remains.
	StatusNearCritical DeadlineStatus = "near_critical"
	// StatusWarning means between one and two weeks remain.
	StatusWarning DeadlineStatus = "warning"
	// StatusOnTrack means more than two weeks remain.
	StatusOnTrack DeadlineStatus = "on_track"
	// StatusUnscheduled means the grouping has no due date configured.
	StatusUnscheduled DeadlineStatus = "unscheduled"
)

// IsValid returns true if the status is a known value.
func (s DeadlineStatus) IsValid() bool {
	switch s {
	case StatusMet, StatusOverdue, StatusNearCritical, StatusWarning, StatusOnTrack, StatusUnscheduled:
		return true
	}
	return false
}

// StatusFor maps remaining business days and progress onto a deadline
// status. Overdue is the highest severity.
func StatusFor(daysRemaining, progressPercent int) DeadlineStatus {
	switch {
	case daysRemaining == 0 && progressPercent >= 100:
		return StatusMet
	case daysRemaining == 0:
		return StatusOverdue
	case daysRemaining <= 7:
		return StatusNearCritical
	case daysRemaining <= 15:
		return StatusWarning
	default:
		return StatusOnTrack
	}
}

// StageRisk is the coarse badge shown per stage.
type StageRisk string

const (
	RiskLow    StageRisk = "low"
	RiskMedium StageRisk = "medium"
	RiskHigh   StageRisk = "high"
)

// StageRiskFor grades a stage by remaining days. A stage with no stories
// carries no delivery pressure and stays low.
func StageRiskFor(daysRemaining, storyCount int) StageRisk {
	if storyCount == 0 {
		return RiskLow
	}
	switch {
	case daysRemaining > 30:
		return RiskLow
	case daysRemaining > 15:
		return RiskMedium
	default:
		return RiskHigh
	}
}
