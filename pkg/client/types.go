package client

import "time"

// User is the public account view
type User struct {
	ID          uint     `json:"user_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Address     *string  `json:"address"`
	PhoneNumber *string  `json:"phone_number"`
	Roles       []string `json:"roles"`
}

// Session is returned by register and login
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Register is the sign-up payload. RoleID nil means Citizen.
type Register struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	RoleID      *uint   `json:"role_id,omitempty"`
}

// Report is an emergency report
type Report struct {
	ID           uint      `json:"report_id"`
	UserID       uint      `json:"user_id"`
	DisasterType string    `json:"disaster_type"`
	Status       string    `json:"status"`
	DateTime     time.Time `json:"date_time"`
	LocationDesc string    `json:"location_desc"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Reporter     *User     `json:"reporter,omitempty"`
}

// NewReport is the report payload
type NewReport struct {
	DisasterType string   `json:"disaster_type"`
	LocationDesc string   `json:"location_desc"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// ReportStats is one analytics row
type ReportStats struct {
	DisasterType string `json:"disaster_type"`
	Count        int64  `json:"count"`
	Pending      int64  `json:"pending"`
	InProgress   int64  `json:"in_progress"`
	Resolved     int64  `json:"resolved"`
	Cancelled    int64  `json:"cancelled"`
}

// Task is a rescue task
type Task struct {
	ID               uint      `json:"task_id"`
	ReportID         uint      `json:"report_id"`
	TaskDescription  string    `json:"task_description"`
	AssignedWorkerID *uint     `json:"assigned_worker_id"`
	TaskStatus       string    `json:"task_status"`
	AssignedDate     time.Time `json:"assigned_date"`
	LastUpdated      time.Time `json:"last_updated"`
	Remarks          *string   `json:"remarks"`
	Report           *Report   `json:"report,omitempty"`
	AssignedWorker   *User     `json:"assigned_worker,omitempty"`
}

// NewTask is the task payload
type NewTask struct {
	ReportID         uint    `json:"report_id"`
	TaskDescription  string  `json:"task_description"`
	AssignedWorkerID *uint   `json:"assigned_worker_id,omitempty"`
	Remarks          *string `json:"remarks,omitempty"`
}

// Shelter is a shelter with its occupancy
type Shelter struct {
	ID                  uint      `json:"shelter_id"`
	ShelterName         string    `json:"shelter_name"`
	ManagedBy           *string   `json:"managed_by"`
	Capacity            int       `json:"capacity"`
	CurrentOccupancy    int       `json:"current_occupancy"`
	IsActive            bool      `json:"is_active"`
	LastUpdated         time.Time `json:"last_updated"`
	StreetNo            *string   `json:"street_no"`
	StreetName          *string   `json:"street_name"`
	ShelterContact      *string   `json:"shelter_contact"`
	OccupancyPercentage float64   `json:"occupancy_percentage,omitempty"`
}

// NewShelter is the shelter payload
type NewShelter struct {
	ShelterName    string  `json:"shelter_name"`
	ManagedBy      *string `json:"managed_by,omitempty"`
	Capacity       int     `json:"capacity"`
	StreetNo       *string `json:"street_no,omitempty"`
	StreetName     *string `json:"street_name,omitempty"`
	ShelterContact *string `json:"shelter_contact,omitempty"`
}

// Resource is a relief stock entry
type Resource struct {
	ID                 uint       `json:"resource_id"`
	Type               string     `json:"resource_type"`
	Quantity           int        `json:"resource_quantity"`
	Description        *string    `json:"resource_desc"`
	ExpiryDate         *time.Time `json:"resource_expiry_date"`
	AvailabilityStatus string     `json:"resource_availability_status"`
	LocationAddress    *string    `json:"distribution_location_address"`
	NGOID              *uint      `json:"ngo_id"`
	LastUpdated        time.Time  `json:"last_updated"`
	NGO                *User      `json:"ngo,omitempty"`
}

// NewResource is the resource payload. ExpiryDate is YYYY-MM-DD or RFC 3339.
type NewResource struct {
	Type            string  `json:"resource_type"`
	Quantity        int     `json:"resource_quantity"`
	Description     *string `json:"resource_desc,omitempty"`
	ExpiryDate      *string `json:"resource_expiry_date,omitempty"`
	LocationAddress *string `json:"distribution_location_address,omitempty"`
}

// ResourceUpdate changes the supplied fields only
type ResourceUpdate struct {
	Type               *string `json:"resource_type,omitempty"`
	Quantity           *int    `json:"resource_quantity,omitempty"`
	Description        *string `json:"resource_desc,omitempty"`
	AvailabilityStatus *string `json:"resource_availability_status,omitempty"`
}

// Distribution moves stock to a shelter
type Distribution struct {
	ID                  uint       `json:"distribution_id"`
	ResourceID          uint       `json:"resource_id"`
	ShelterID           uint       `json:"shelter_id"`
	QuantityDistributed int        `json:"quantity_distributed"`
	DateDistributed     time.Time  `json:"date_distributed"`
	RequestedAt         time.Time  `json:"requested_at"`
	DispatchedAt        *time.Time `json:"dispatched_at"`
	DeliveredAt         *time.Time `json:"delivered_at"`
	Status              string     `json:"status"`
	AssignedTo          *uint      `json:"assigned_to"`
	Remarks             *string    `json:"remarks"`
	Resource            *Resource  `json:"resource,omitempty"`
	Shelter             *Shelter   `json:"shelter,omitempty"`
	Assignee            *User      `json:"assignee,omitempty"`
}

// NewDistribution is the distribution payload
type NewDistribution struct {
	ResourceID          uint    `json:"resource_id"`
	ShelterID           uint    `json:"shelter_id"`
	QuantityDistributed int     `json:"quantity_distributed"`
	AssignedTo          *uint   `json:"assigned_to,omitempty"`
	Remarks             *string `json:"remarks,omitempty"`
}

// DistributionUpdate sets the status and optional timestamps
type DistributionUpdate struct {
	Status       string  `json:"status"`
	DispatchedAt *string `json:"dispatched_at,omitempty"`
	DeliveredAt  *string `json:"delivered_at,omitempty"`
}

// Notification is a public announcement
type Notification struct {
	ID           uint      `json:"notification_id"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	DatetimeSent time.Time `json:"datetime_sent"`
	IsActive     bool      `json:"is_active"`
	CreatedBy    *uint     `json:"created_by"`
	Creator      *User     `json:"creator,omitempty"`
}

// NotificationUpdate changes the supplied fields only
type NotificationUpdate struct {
	Title    *string `json:"title,omitempty"`
	Message  *string `json:"message,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
