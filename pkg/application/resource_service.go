package application

import (
	"sort"

	"github.com/rmarchan/tablero/pkg/domain/metrics"
	"github.com/rmarchan/tablero/pkg/storage"
)

// MemberUsage is one person's estimated and weighted hours.
type MemberUsage struct {
	Name           string  `json:"name"`
	EstimatedHours float64 `json:"estimated_hours"`
	WeightedHours  float64 `json:"weighted_hours"`
	Factor         float64 `json:"factor"`
}

// RoleUsage compares a role's hour budget against the hours estimated for
// its members.
type RoleUsage struct {
	Role           string        `json:"role"`
	BudgetHours    float64       `json:"budget_hours"`
	EstimatedHours float64       `json:"estimated_hours"`
	RemainingHours float64       `json:"remaining_hours"`
	Members        []MemberUsage `json:"members"`
}

// ResourceReport is the per-role budget view plus everyone the roster does
// not place.
type ResourceReport struct {
	Roles      []RoleUsage   `json:"roles"`
	Unassigned []MemberUsage `json:"unassigned,omitempty"`
}

// ResourceService derives per-role resource usage from the snapshot and
// the roster.
type ResourceService struct {
	repo *storage.FilesystemRepository
}

func NewResourceService(repo *storage.FilesystemRepository) *ResourceService {
	return &ResourceService{repo: repo}
}

// BuildReport groups estimated hours by assignee, places each assignee
// under their roster role, and compares role totals against budgets.
func (s *ResourceService) BuildReport() (*ResourceReport, error) {
	snapshot, err := s.repo.LoadSnapshot()
	if err != nil {
		return nil, err
	}
	profiles, err := s.repo.LoadProfiles()
	if err != nil {
		return nil, err
	}
	weights, err := s.repo.LoadWeightings()
	if err != nil {
		return nil, err
	}

	byAssignee := metrics.TeamEstimate(snapshot.Items)

	report := &ResourceReport{}
	byRole := make(map[string]*RoleUsage)
	for _, p := range profiles.Profiles {
		byRole[p.Role] = &RoleUsage{Role: p.Role, BudgetHours: p.BudgetHours}
	}

	names := make([]string, 0, len(byAssignee))
	for name := range byAssignee {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		estimated := byAssignee[name]
		member := MemberUsage{
			Name:           name,
			EstimatedHours: estimated,
			Factor:         weights.Factor(name),
		}
		member.WeightedHours = estimated * member.Factor

		role := profiles.RoleFor(name)
		if role == "" {
			report.Unassigned = append(report.Unassigned, member)
			continue
		}
		usage := byRole[role]
		usage.Members = append(usage.Members, member)
		usage.EstimatedHours += estimated
	}

	for _, p := range profiles.Profiles {
		usage := byRole[p.Role]
		usage.RemainingHours = usage.BudgetHours - usage.EstimatedHours
		report.Roles = append(report.Roles, *usage)
	}

	return report, nil
}
