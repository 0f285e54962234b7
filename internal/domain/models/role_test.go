package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleSetCapabilities(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		can   []Capability
		not   []Capability
	}{
		{
			name:  "citizen",
			roles: []string{"Citizen"},
			not:   []Capability{CapViewAllEmergencies, CapViewTasks, CapManageShelters, CapManageNotifications},
		},
		{
			name:  "rescue worker",
			roles: []string{"Rescue Worker"},
			can:   []Capability{CapViewAllEmergencies, CapUpdateEmergencyStatus, CapViewOwnTasks, CapViewTasks, CapUpdateTaskStatus},
			not:   []Capability{CapViewAnalytics, CapManageTasks, CapManageResources},
		},
		{
			name:  "ngo",
			roles: []string{"NGO"},
			can:   []Capability{CapViewAllEmergencies, CapViewAnalytics, CapManageShelters, CapManageResources},
			not:   []Capability{CapUpdateEmergencyStatus, CapViewTasks, CapManageNotifications},
		},
		{
			name:  "government",
			roles: []string{"Government"},
			can:   []Capability{CapManageTasks, CapManageNotifications, CapViewTasks, CapUpdateTaskStatus},
			not:   []Capability{CapViewOwnTasks},
		},
		{
			name:  "union of roles",
			roles: []string{"Citizen", "NGO", "Rescue Worker"},
			can:   []Capability{CapViewOwnTasks, CapManageResources},
			not:   []Capability{CapManageTasks},
		},
		{
			name:  "unknown names grant nothing",
			roles: []string{"Admin", "citizen"},
			not:   []Capability{CapViewAllEmergencies},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewRoleSet(tt.roles...)
			for _, c := range tt.can {
				assert.True(t, set.Can(c), c.String())
			}
			for _, c := range tt.not {
				assert.False(t, set.Can(c), c.String())
			}
		})
	}
}

func TestParseRoleName(t *testing.T) {
	r, ok := ParseRoleName("Rescue Worker")
	assert.True(t, ok)
	assert.Equal(t, RoleRescueWorker, r)

	_, ok = ParseRoleName("rescue worker")
	assert.False(t, ok)
}

func TestStatusEnums(t *testing.T) {
	assert.True(t, ReportStatus("In Progress").Valid())
	assert.False(t, ReportStatus("Closed").Valid())
	assert.True(t, TaskStatus("Completed").Valid())
	assert.False(t, TaskStatus("Done").Valid())
	assert.True(t, AvailabilityStatus("Distributed").Valid())
	assert.False(t, AvailabilityStatus("Reserved").Valid())
}

func TestShelterOccupancyRate(t *testing.T) {
	s := Shelter{Capacity: 8, CurrentOccupancy: 2}
	assert.InDelta(t, 25.0, s.OccupancyRate(), 1e-9)
	assert.Zero(t, (&Shelter{}).OccupancyRate())
}

func TestUserProfile(t *testing.T) {
	u := User{ID: 3, Name: "Ada", Email: "ada@example.com", Password: "hash",
		Roles: []Role{{Name: RoleCitizen}, {Name: RoleNGO}}}

	p := u.Profile()
	assert.Equal(t, uint(3), p.ID)
	assert.Equal(t, []string{"Citizen", "NGO"}, p.Roles)
	assert.True(t, u.RoleSet().Has(RoleNGO))
}
