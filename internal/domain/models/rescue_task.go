package models

import "time"

// TaskStatus is the lifecycle state of a rescue task
type TaskStatus string

const (
	TaskStatusAssigned   TaskStatus = "Assigned"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusCancelled  TaskStatus = "Cancelled"
)

// TaskStatuses lists every valid task status
var TaskStatuses = []TaskStatus{
	TaskStatusAssigned,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusCancelled,
}

// Valid reports whether s is one of the enumerated statuses
func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// RescueTask is work dispatched against an emergency report
type RescueTask struct {
	ID               uint       `gorm:"primaryKey" json:"task_id"`
	ReportID         uint       `gorm:"not null;index" json:"report_id"`
	TaskDescription  string     `gorm:"type:text;not null" json:"task_description"`
	AssignedWorkerID *uint      `gorm:"index" json:"assigned_worker_id"`
	TaskStatus       TaskStatus `gorm:"type:varchar(20);not null" json:"task_status"`
	AssignedDate     time.Time  `gorm:"not null;index" json:"assigned_date"`
	LastUpdated      time.Time  `json:"last_updated"`
	Remarks          *string    `gorm:"type:text" json:"remarks"`

	// Relations
	Report         *EmergencyReport `gorm:"foreignKey:ReportID" json:"report,omitempty"`
	AssignedWorker *User            `gorm:"foreignKey:AssignedWorkerID" json:"assigned_worker,omitempty"`
}
