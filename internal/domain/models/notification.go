package models

import "time"

// Notification is a broadcast message; removal only clears IsActive
type Notification struct {
	ID           uint      `gorm:"primaryKey" json:"notification_id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	DatetimeSent time.Time `gorm:"column:datetime_sent;not null;index" json:"datetime_sent"`
	IsActive     bool      `gorm:"not null;index" json:"is_active"`
	CreatedBy    *uint     `gorm:"index" json:"created_by"`

	// Relations
	Creator *User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}
