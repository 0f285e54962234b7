package models

import "time"

// ReportStatus is the lifecycle state of an emergency report
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "Pending"
	ReportStatusInProgress ReportStatus = "In Progress"
	ReportStatusResolved   ReportStatus = "Resolved"
	ReportStatusCancelled  ReportStatus = "Cancelled"
)

// ReportStatuses lists every valid report status
var ReportStatuses = []ReportStatus{
	ReportStatusPending,
	ReportStatusInProgress,
	ReportStatusResolved,
	ReportStatusCancelled,
}

// Valid reports whether s is one of the enumerated statuses
func (s ReportStatus) Valid() bool {
	for _, v := range ReportStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// EmergencyReport is an incident raised by a user
type EmergencyReport struct {
	ID           uint         `gorm:"primaryKey" json:"report_id"`
	UserID       uint         `gorm:"not null;index" json:"user_id"`
	DisasterType string       `gorm:"type:varchar(50);not null;index" json:"disaster_type"`
	Status       ReportStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	DateTime     time.Time    `gorm:"not null" json:"date_time"`
	LocationDesc string       `gorm:"type:varchar(255);not null" json:"location_desc"`
	Latitude     *float64     `json:"latitude"`
	Longitude    *float64     `json:"longitude"`

	// Relations
	Reporter *User `gorm:"foreignKey:UserID" json:"reporter,omitempty"`
}

// ReportAnalytics is one row of the per disaster type breakdown
type ReportAnalytics struct {
	DisasterType string `json:"disaster_type"`
	Count        int64  `json:"count"`
	Pending      int64  `json:"pending"`
	InProgress   int64  `json:"in_progress"`
	Resolved     int64  `json:"resolved"`
	Cancelled    int64  `json:"cancelled"`
}
