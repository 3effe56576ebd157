// Package team holds the user-editable assignment tables: per-assignee
// weighting factors and the role roster. Both are plain configuration
// objects passed into the metric calculations; nothing here reaches into
// ambient state.
package team

import "fmt"

// WeightingTable maps assignee names to multiplicative effort factors.
// Lookup is exact on the trimmed name; anyone absent weighs 1.
type WeightingTable struct {
	Factors map[string]float64 `yaml:"factors" json:"factors"`
}

// NewWeightingTable returns an empty table.
func NewWeightingTable() *WeightingTable {
	return &WeightingTable{Factors: make(map[string]float64)}
}

// Factor returns the weighting factor for an assignee, defaulting to
// exactly 1 for unknown names, including the empty string.
func (t *WeightingTable) Factor(name string) float64 {
	if t == nil || t.Factors == nil {
		return 1
	}
	if f, ok := t.Factors[name]; ok && f > 0 {
		return f
	}
	return 1
}

// SetFactor records a factor for an assignee. Factors must sit in (0, 2].
func (t *WeightingTable) SetFactor(name string, factor float64) error {
	if name == "" {
		return fmt.Errorf("assignee name cannot be empty")
	}
	if factor <= 0 || factor > 2 {
		return fmt.Errorf("factor %v out of range (0, 2]", factor)
	}
	if t.Factors == nil {
		t.Factors = make(map[string]float64)
	}
	t.Factors[name] = factor
	return nil
}

// RemoveFactor deletes an assignee's override. Returns error if not found.
func (t *WeightingTable) RemoveFactor(name string) error {
	if _, ok := t.Factors[name]; !ok {
		return fmt.Errorf("no weighting for %s", name)
	}
	delete(t.Factors, name)
	return nil
}

// Profile assigns a group of people to a role with an hour budget.
type Profile struct {
	Role        string   `yaml:"role" json:"role"`
	BudgetHours float64  `yaml:"budget_hours" json:"budget_hours"`
	Assigned    []string `yaml:"assigned" json:"assigned"`
}

// ProfilesConfig is the roster stored in .tablero/profiles.yaml.
type ProfilesConfig struct {
	Profiles []Profile `yaml:"profiles" json:"profiles"`
}

// FindRole returns the profile for a role, or nil if not configured.
func (c *ProfilesConfig) FindRole(role string) *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].Role == role {
			return &c.Profiles[i]
		}
	}
	return nil
}

// RoleFor returns the role a person is assigned to, empty when unknown.
// The first matching profile wins.
func (c *ProfilesConfig) RoleFor(name string) string {
	for _, p := range c.Profiles {
		for _, n := range p.Assigned {
			if n == name {
				return p.Role
			}
		}
	}
	return ""
}

// AddMember assigns a person to a role, creating the profile if needed.
func (c *ProfilesConfig) AddMember(role, name string) error {
	if role == "" || name == "" {
		return fmt.Errorf("role and name are required")
	}
	p := c.FindRole(role)
	if p == nil {
		c.Profiles = append(c.Profiles, Profile{Role: role})
		p = &c.Profiles[len(c.Profiles)-1]
	}
	for _, n := range p.Assigned {
		if n == name {
			return nil
		}
	}
	p.Assigned = append(p.Assigned, name)
	return nil
}

// RemoveMember removes a person from a role. Returns error if not found.
func (c *ProfilesConfig) RemoveMember(role, name string) error {
	p := c.FindRole(role)
	if p == nil {
		return fmt.Errorf("role not found: %s", role)
	}
	for i, n := range p.Assigned {
		if n == name {
			p.Assigned = append(p.Assigned[:i], p.Assigned[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s is not assigned to %s", name, role)
}
