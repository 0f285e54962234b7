package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/metrics"
)

// InterfaceResourceService manages relief stock and its distribution to shelters
type InterfaceResourceService interface {
	ListAll(ctx context.Context) ([]models.Resource, error)
	ListAvailable(ctx context.Context) ([]models.Resource, error)
	Create(ctx context.Context, ngoID uint, in CreateResourceInput) (*models.Resource, error)
	Update(ctx context.Context, id uint, in UpdateResourceInput) (*models.Resource, error)
	ListDistributions(ctx context.Context) ([]models.ResourceDistribution, error)
	CreateDistribution(ctx context.Context, in CreateDistributionInput) (*models.ResourceDistribution, error)
	UpdateDistributionStatus(ctx context.Context, id uint, in UpdateDistributionInput) (*models.ResourceDistribution, error)
}

// CreateResourceInput is the body of a new resource. ExpiryDate is YYYY-MM-DD or RFC 3339.
type CreateResourceInput struct {
	ResourceType    string
	Quantity        int
	Description     *string
	ExpiryDate      *string
	LocationAddress *string
}

// UpdateResourceInput holds the fields to change; nil means unchanged
type UpdateResourceInput struct {
	ResourceType       *string
	Quantity           *int
	Description        *string
	AvailabilityStatus *string
}

// CreateDistributionInput is the body of a new distribution
type CreateDistributionInput struct {
	ResourceID          uint
	ShelterID           uint
	QuantityDistributed int
	AssignedTo          *uint
	Remarks             *string
}

// UpdateDistributionInput overwrites the status and optionally the timestamps
type UpdateDistributionInput struct {
	Status       string
	DispatchedAt *time.Time
	DeliveredAt  *time.Time
}

// ResourceService implements InterfaceResourceService
type ResourceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewResourceService creates the resource service
func NewResourceService(db *gorm.DB, cfg *config.Config) InterfaceResourceService {
	return &ResourceService{
		DB:     db,
		Config: cfg,
	}
}

// ParseDate accepts YYYY-MM-DD or RFC 3339
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// 1 ListAll returns every resource with its NGO, most recently updated first
func (s *ResourceService) ListAll(ctx context.Context) ([]models.Resource, error) {
	resources := []models.Resource{}
	err := s.DB.WithContext(ctx).
		Preload("NGO").
		Order("last_updated DESC").Order("id DESC").
		Find(&resources).Error
	if err != nil {
		return nil, code.From(err)
	}
	return resources, nil
}

// 2 ListAvailable returns resources still marked Available
func (s *ResourceService) ListAvailable(ctx context.Context) ([]models.Resource, error) {
	resources := []models.Resource{}
	err := s.DB.WithContext(ctx).
		Preload("NGO").
		Where("resource_availability_status = ?", models.AvailabilityAvailable).
		Order("last_updated DESC").Order("id DESC").
		Find(&resources).Error
	if err != nil {
		return nil, code.From(err)
	}
	return resources, nil
}

// 3 Create stores an Available resource owned by the caller
func (s *ResourceService) Create(ctx context.Context, ngoID uint, in CreateResourceInput) (*models.Resource, error) {
	in.ResourceType = strings.TrimSpace(in.ResourceType)
	if in.ResourceType == "" {
		return nil, code.Newf(code.ErrValidation, "Resource type and quantity are required")
	}
	if in.Quantity <= 0 {
		return nil, code.New(code.ErrInvalidQuantity)
	}

	resource := models.Resource{
		Type:               in.ResourceType,
		Quantity:           in.Quantity,
		Description:        in.Description,
		AvailabilityStatus: models.AvailabilityAvailable,
		LocationAddress:    in.LocationAddress,
		LastUpdated:        time.Now(),
	}
	if ngoID != 0 {
		resource.NGOID = &ngoID
	}
	if in.ExpiryDate != nil && strings.TrimSpace(*in.ExpiryDate) != "" {
		expiry, err := ParseDate(strings.TrimSpace(*in.ExpiryDate))
		if err != nil {
			return nil, code.Newf(code.ErrValidation, "Invalid resource_expiry_date, expected YYYY-MM-DD or RFC 3339")
		}
		resource.ExpiryDate = &expiry
	}

	if err := s.DB.WithContext(ctx).Create(&resource).Error; err != nil {
		return nil, code.From(err)
	}
	return &resource, nil
}

// 4 Update changes only the supplied fields and touches last_updated.
// Quantity and availability status are written as given; only distributions
// derive the status from the remaining quantity.
func (s *ResourceService) Update(ctx context.Context, id uint, in UpdateResourceInput) (*models.Resource, error) {
	updates := map[string]interface{}{}

	if in.ResourceType != nil && strings.TrimSpace(*in.ResourceType) != "" {
		updates["resource_type"] = strings.TrimSpace(*in.ResourceType)
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, code.Newf(code.ErrInvalidQuantity, "Quantity cannot be negative")
		}
		updates["resource_quantity"] = *in.Quantity
	}
	if in.Description != nil {
		updates["resource_desc"] = *in.Description
	}
	if in.AvailabilityStatus != nil && *in.AvailabilityStatus != "" {
		status := models.AvailabilityStatus(*in.AvailabilityStatus)
		if !status.Valid() {
			return nil, code.New(code.ErrInvalidAvailabilityStatus)
		}
		updates["resource_availability_status"] = status
	}
	if len(updates) == 0 {
		return nil, code.New(code.ErrNoFieldsToUpdate)
	}
	updates["last_updated"] = time.Now()

	var resource models.Resource
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&resource, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code.New(code.ErrResourceNotFound)
			}
			return err
		}
		if err := tx.Model(&resource).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Take(&resource, id).Error
	})
	if err != nil {
		return nil, code.From(err)
	}
	return &resource, nil
}

// 5 ListDistributions returns every distribution, newest first
func (s *ResourceService) ListDistributions(ctx context.Context) ([]models.ResourceDistribution, error) {
	distributions := []models.ResourceDistribution{}
	err := s.DB.WithContext(ctx).
		Preload("Resource").
		Preload("Shelter").
		Preload("Assignee").
		Order("date_distributed DESC").Order("id DESC").
		Find(&distributions).Error
	if err != nil {
		return nil, code.From(err)
	}
	return distributions, nil
}

// 6 CreateDistribution records a distribution and draws its quantity from the
// resource. Everything commits together or not at all.
func (s *ResourceService) CreateDistribution(ctx context.Context, in CreateDistributionInput) (*models.ResourceDistribution, error) {
	if in.ResourceID == 0 || in.ShelterID == 0 {
		return nil, code.Newf(code.ErrValidation, "Resource ID, shelter ID, and quantity are required")
	}
	if in.QuantityDistributed <= 0 {
		return nil, code.New(code.ErrInvalidQuantity)
	}
	if in.AssignedTo != nil && *in.AssignedTo == 0 {
		in.AssignedTo = nil
	}

	var (
		distribution models.ResourceDistribution
		depleted     bool
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var resource models.Resource
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Take(&resource, in.ResourceID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.New(code.ErrResourceNotFound)
		}
		if err != nil {
			return err
		}

		if resource.AvailabilityStatus != models.AvailabilityAvailable {
			return code.New(code.ErrResourceNotAvailable)
		}
		if in.QuantityDistributed > resource.Quantity {
			return code.New(code.ErrInsufficientQuantity)
		}

		var count int64
		if err := tx.Model(&models.Shelter{}).Where("id = ?", in.ShelterID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return code.New(code.ErrShelterNotFound)
		}

		if in.AssignedTo != nil {
			ok, err := userExists(tx, *in.AssignedTo)
			if err != nil {
				return err
			}
			if !ok {
				return code.New(code.ErrUserNotFound)
			}
		}

		now := time.Now()
		distribution = models.ResourceDistribution{
			ResourceID:          in.ResourceID,
			ShelterID:           in.ShelterID,
			QuantityDistributed: in.QuantityDistributed,
			DateDistributed:     now,
			RequestedAt:         now,
			Status:              models.DistributionRequested,
			AssignedTo:          in.AssignedTo,
			Remarks:             in.Remarks,
		}
		if err := tx.Create(&distribution).Error; err != nil {
			return err
		}

		// the guard repeats the checks so the decrement holds even without row locks
		result := tx.Model(&models.Resource{}).
			Where("id = ? AND resource_availability_status = ? AND resource_quantity >= ?",
				in.ResourceID, models.AvailabilityAvailable, in.QuantityDistributed).
			Updates(map[string]interface{}{
				"resource_quantity": gorm.Expr("resource_quantity - ?", in.QuantityDistributed),
				"last_updated":      now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return code.New(code.ErrInsufficientQuantity)
		}

		result = tx.Model(&models.Resource{}).
			Where("id = ? AND resource_quantity = 0", in.ResourceID).
			Update("resource_availability_status", models.AvailabilityDistributed)
		if result.Error != nil {
			return result.Error
		}
		depleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return nil, code.From(err)
	}

	metrics.Event(metrics.EventDistributionCreated)
	if depleted {
		metrics.Event(metrics.EventResourceDepleted)
	}
	return &distribution, nil
}

// 7 UpdateDistributionStatus overwrites the status and any supplied timestamps.
// It never changes the resource.
func (s *ResourceService) UpdateDistributionStatus(ctx context.Context, id uint, in UpdateDistributionInput) (*models.ResourceDistribution, error) {
	in.Status = strings.TrimSpace(in.Status)
	if in.Status == "" {
		return nil, code.Newf(code.ErrValidation, "Status is required")
	}

	updates := map[string]interface{}{"status": in.Status}
	if in.DispatchedAt != nil {
		updates["dispatched_at"] = *in.DispatchedAt
	}
	if in.DeliveredAt != nil {
		updates["delivered_at"] = *in.DeliveredAt
	}

	var distribution models.ResourceDistribution
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&distribution, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code.New(code.ErrDistributionNotFound)
			}
			return err
		}
		if err := tx.Model(&distribution).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Take(&distribution, id).Error
	})
	if err != nil {
		return nil, code.From(err)
	}
	return &distribution, nil
}
