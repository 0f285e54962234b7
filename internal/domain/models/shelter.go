package models

import "time"

// Shelter houses displaced people up to its capacity
type Shelter struct {
	ID               uint      `gorm:"primaryKey" json:"shelter_id"`
	ShelterName      string    `gorm:"type:varchar(100);not null;index" json:"shelter_name"`
	ManagedBy        *string   `gorm:"type:varchar(100)" json:"managed_by"`
	Capacity         int       `gorm:"not null" json:"capacity"`
	CurrentOccupancy int       `gorm:"not null" json:"current_occupancy"` // 0..Capacity
	IsActive         bool      `gorm:"not null;index" json:"is_active"`
	LastUpdated      time.Time `json:"last_updated"`
	StreetNo         *string   `gorm:"type:varchar(20)" json:"street_no"`
	StreetName       *string   `gorm:"type:varchar(100)" json:"street_name"`
	ShelterContact   *string   `gorm:"type:varchar(50)" json:"shelter_contact"`
}

// ShelterOccupancy is a shelter plus its computed fill ratio
type ShelterOccupancy struct {
	Shelter
	OccupancyPercentage float64 `json:"occupancy_percentage"`
}

// OccupancyRate returns current occupancy as a percentage of capacity
func (s *Shelter) OccupancyRate() float64 {
	if s.Capacity <= 0 {
		return 0
	}
	return float64(s.CurrentOccupancy) * 100 / float64(s.Capacity)
}
