package application

import (
	"github.com/rmarchan/tablero/pkg/domain/team"
	"github.com/rmarchan/tablero/pkg/storage"
)

// TeamService edits the weighting table and the role roster through the
// workspace repository. Every mutation is load-modify-save so concurrent
// CLI invocations see each other's writes.
type TeamService struct {
	repo *storage.FilesystemRepository
}

func NewTeamService(repo *storage.FilesystemRepository) *TeamService {
	return &TeamService{repo: repo}
}

// Weightings returns the current weighting table.
func (s *TeamService) Weightings() (*team.WeightingTable, error) {
	return s.repo.LoadWeightings()
}

// SetWeighting records a factor for an assignee.
func (s *TeamService) SetWeighting(name string, factor float64) error {
	t, err := s.repo.LoadWeightings()
	if err != nil {
		return err
	}
	if err := t.SetFactor(name, factor); err != nil {
		return err
	}
	return s.repo.SaveWeightings(t)
}

// RemoveWeighting deletes an assignee's override.
func (s *TeamService) RemoveWeighting(name string) error {
	t, err := s.repo.LoadWeightings()
	if err != nil {
		return err
	}
	if err := t.RemoveFactor(name); err != nil {
		return err
	}
	return s.repo.SaveWeightings(t)
}

// Profiles returns the role roster.
func (s *TeamService) Profiles() (*team.ProfilesConfig, error) {
	return s.repo.LoadProfiles()
}

// AddMember assigns a person to a role, creating the role if needed.
func (s *TeamService) AddMember(role, name string) error {
	cfg, err := s.repo.LoadProfiles()
	if err != nil {
		return err
	}
	if err := cfg.AddMember(role, name); err != nil {
		return err
	}
	return s.repo.SaveProfiles(cfg)
}

// RemoveMember removes a person from a role.
func (s *TeamService) RemoveMember(role, name string) error {
	cfg, err := s.repo.LoadProfiles()
	if err != nil {
		return err
	}
	if err := cfg.RemoveMember(role, name); err != nil {
		return err
	}
	return s.repo.SaveProfiles(cfg)
}

// SetBudget sets the hour budget for a role.
func (s *TeamService) SetBudget(role string, hours float64) error {
	cfg, err := s.repo.LoadProfiles()
	if err != nil {
		return err
	}
	p := cfg.FindRole(role)
	if p == nil {
		cfg.Profiles = append(cfg.Profiles, team.Profile{Role: role, BudgetHours: hours})
	} else {
		p.BudgetHours = hours
	}
	return s.repo.SaveProfiles(cfg)
}
