package models

import "time"

// AvailabilityStatus of a resource stock
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "Available"
	AvailabilityDistributed AvailabilityStatus = "Distributed"
)

// Valid reports whether s is Available or Distributed
func (s AvailabilityStatus) Valid() bool {
	return s == AvailabilityAvailable || s == AvailabilityDistributed
}

// Resource is a relief stock owned by an NGO
type Resource struct {
	ID                 uint               `gorm:"primaryKey" json:"resource_id"`
	Type               string             `gorm:"column:resource_type;type:varchar(50);not null" json:"resource_type"`
	Quantity           int                `gorm:"column:resource_quantity;not null" json:"resource_quantity"`
	Description        *string            `gorm:"column:resource_desc;type:text" json:"resource_desc"`
	ExpiryDate         *time.Time         `gorm:"column:resource_expiry_date" json:"resource_expiry_date"`
	AvailabilityStatus AvailabilityStatus `gorm:"column:resource_availability_status;type:varchar(20);not null;index" json:"resource_availability_status"`
	LocationAddress    *string            `gorm:"column:distribution_location_address;type:varchar(255)" json:"distribution_location_address"`
	NGOID              *uint              `gorm:"column:ngo_id;index" json:"ngo_id"`
	LastUpdated        time.Time          `gorm:"index" json:"last_updated"`

	// Relations
	NGO *User `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
}

// Distribution statuses. Status is free-form; these are the values the
// workflow writes.
const (
	DistributionRequested  = "Requested"
	DistributionDispatched = "Dispatched"
	DistributionDelivered  = "Delivered"
)

// ResourceDistribution records stock moved from a resource to a shelter
type ResourceDistribution struct {
	ID                  uint       `gorm:"primaryKey" json:"distribution_id"`
	ResourceID          uint       `gorm:"not null;index" json:"resource_id"`
	ShelterID           uint       `gorm:"not null;index" json:"shelter_id"`
	QuantityDistributed int        `gorm:"not null" json:"quantity_distributed"`
	DateDistributed     time.Time  `gorm:"index" json:"date_distributed"`
	RequestedAt         time.Time  `json:"requested_at"`
	DispatchedAt        *time.Time `json:"dispatched_at"`
	DeliveredAt         *time.Time `json:"delivered_at"`
	Status              string     `gorm:"type:varchar(30);not null" json:"status"`
	AssignedTo          *uint      `gorm:"column:assigned_to;index" json:"assigned_to"`
	Remarks             *string    `gorm:"type:text" json:"remarks"`

	// Relations
	Resource *Resource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
	Shelter  *Shelter  `gorm:"foreignKey:ShelterID" json:"shelter,omitempty"`
	Assignee *User     `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}
