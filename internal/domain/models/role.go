package models

// RoleName is the closed set of roles a user can hold
type RoleName string

const (
	RoleCitizen      RoleName = "Citizen"
	RoleRescueWorker RoleName = "Rescue Worker"
	RoleNGO          RoleName = "NGO"
	RoleGovernment   RoleName = "Government"
)

// Capability is a permission checked by route guards
type Capability int

const (
	CapViewAllEmergencies Capability = iota + 1
	CapUpdateEmergencyStatus
	CapViewAnalytics
	CapViewOwnTasks
	CapViewTasks
	CapManageTasks
	CapUpdateTaskStatus
	CapManageShelters
	CapManageResources
	CapManageNotifications
)

var capabilityNames = map[Capability]string{
	CapViewAllEmergencies:    "view all emergencies",
	CapUpdateEmergencyStatus: "update emergency status",
	CapViewAnalytics:         "view analytics",
	CapViewOwnTasks:          "view own tasks",
	CapViewTasks:             "view tasks",
	CapManageTasks:           "manage tasks",
	CapUpdateTaskStatus:      "update task status",
	CapManageShelters:        "manage shelters",
	CapManageResources:       "manage resources",
	CapManageNotifications:   "manage notifications",
}

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return "unknown capability"
}

// capabilities granted per role. Citizen holds none beyond being authenticated.
var roleCapabilities = map[RoleName][]Capability{
	RoleCitizen: {},
	RoleRescueWorker: {
		CapViewAllEmergencies,
		CapUpdateEmergencyStatus,
		CapViewOwnTasks,
		CapViewTasks,
		CapUpdateTaskStatus,
	},
	RoleNGO: {
		CapViewAllEmergencies,
		CapViewAnalytics,
		CapManageShelters,
		CapManageResources,
	},
	RoleGovernment: {
		CapViewAllEmergencies,
		CapUpdateEmergencyStatus,
		CapViewAnalytics,
		CapViewTasks,
		CapManageTasks,
		CapUpdateTaskStatus,
		CapManageShelters,
		CapManageResources,
		CapManageNotifications,
	},
}

// ParseRoleName maps a stored role name onto the enum
func ParseRoleName(name string) (RoleName, bool) {
	r := RoleName(name)
	_, ok := roleCapabilities[r]
	return r, ok
}

// Grants reports whether the role carries the capability
func (r RoleName) Grants(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}

// RoleSet is the set of roles resolved for an authenticated user
type RoleSet map[RoleName]struct{}

// NewRoleSet builds a set from stored role names, ignoring names outside the enum
func NewRoleSet(names ...string) RoleSet {
	set := make(RoleSet, len(names))
	for _, name := range names {
		if r, ok := ParseRoleName(name); ok {
			set[r] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains the role
func (s RoleSet) Has(r RoleName) bool {
	_, ok := s[r]
	return ok
}

// Can reports whether any role in the set grants the capability
func (s RoleSet) Can(c Capability) bool {
	for r := range s {
		if r.Grants(c) {
			return true
		}
	}
	return false
}

// Role is a stored role row
type Role struct {
	ID          uint     `gorm:"primaryKey" json:"role_id"`
	Name        RoleName `gorm:"column:role_name;type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string   `gorm:"column:role_description;type:varchar(255)" json:"role_description"`
}

// DefaultRoles are written by the seed step
var DefaultRoles = []Role{
	{Name: RoleCitizen, Description: "Regular citizen who can report emergencies"},
	{Name: RoleRescueWorker, Description: "Rescue worker who can handle emergency reports and tasks"},
	{Name: RoleNGO, Description: "Non-governmental organization that can manage resources"},
	{Name: RoleGovernment, Description: "Government agency with full access"},
}
