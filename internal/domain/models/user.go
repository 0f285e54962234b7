package models

import "time"

// User is an account of any role
type User struct {
	ID          uint      `gorm:"primaryKey" json:"user_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Email       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:varchar(100);not null" json:"-"` // bcrypt hash, never serialized
	Address     *string   `gorm:"type:varchar(255)" json:"address"`
	PhoneNumber *string   `gorm:"type:varchar(20)" json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Roles []Role `gorm:"many2many:user_roles;" json:"-"`
}

// UserProfile is the client facing shape of a user with role names flattened
type UserProfile struct {
	ID          uint     `json:"user_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Address     *string  `json:"address"`
	PhoneNumber *string  `json:"phone_number"`
	Roles       []string `json:"roles"`
}

// RoleNames returns the names of the loaded roles
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, string(r.Name))
	}
	return names
}

// RoleSet returns the loaded roles as an enum set
func (u *User) RoleSet() RoleSet {
	return NewRoleSet(u.RoleNames()...)
}

// Profile builds the response shape; Roles must be preloaded
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Roles:       u.RoleNames(),
	}
}
