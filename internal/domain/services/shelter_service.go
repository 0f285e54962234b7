package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
)

// occupancyTopN is the size of the occupancy ranking
const occupancyTopN = 10

// InterfaceShelterService manages shelters and their occupancy
type InterfaceShelterService interface {
	ListAll(ctx context.Context) ([]models.Shelter, error)
	ListAvailable(ctx context.Context) ([]models.Shelter, error)
	Get(ctx context.Context, id uint) (*models.Shelter, error)
	Create(ctx context.Context, in CreateShelterInput) (*models.Shelter, error)
	UpdateOccupancy(ctx context.Context, id uint, occupancy int) (*models.Shelter, error)
	ByOccupancy(ctx context.Context) ([]models.ShelterOccupancy, error)
}

// CreateShelterInput is the body of a new shelter
type CreateShelterInput struct {
	ShelterName    string
	ManagedBy      *string
	Capacity       int
	StreetNo       *string
	StreetName     *string
	ShelterContact *string
}

// ShelterService implements InterfaceShelterService
type ShelterService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewShelterService creates the shelter service
func NewShelterService(db *gorm.DB, cfg *config.Config) InterfaceShelterService {
	return &ShelterService{
		DB:     db,
		Config: cfg,
	}
}

// 1 ListAll returns active shelters by name
func (s *ShelterService) ListAll(ctx context.Context) ([]models.Shelter, error) {
	shelters := []models.Shelter{}
	err := s.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("shelter_name").Order("id").
		Find(&shelters).Error
	if err != nil {
		return nil, code.From(err)
	}
	return shelters, nil
}

// 2 ListAvailable returns active shelters with spare room, most free slots first
func (s *ShelterService) ListAvailable(ctx context.Context) ([]models.Shelter, error) {
	shelters := []models.Shelter{}
	err := s.DB.WithContext(ctx).
		Where("is_active = ? AND current_occupancy < capacity", true).
		Order("(capacity - current_occupancy) DESC").Order("id").
		Find(&shelters).Error
	if err != nil {
		return nil, code.From(err)
	}
	return shelters, nil
}

// 3 Get returns one shelter
func (s *ShelterService) Get(ctx context.Context, id uint) (*models.Shelter, error) {
	var shelter models.Shelter
	err := s.DB.WithContext(ctx).Take(&shelter, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.New(code.ErrShelterNotFound)
	}
	if err != nil {
		return nil, code.From(err)
	}
	return &shelter, nil
}

// 4 Create stores an empty, active shelter
func (s *ShelterService) Create(ctx context.Context, in CreateShelterInput) (*models.Shelter, error) {
	in.ShelterName = strings.TrimSpace(in.ShelterName)
	if in.ShelterName == "" {
		return nil, code.Newf(code.ErrValidation, "Shelter name and capacity are required")
	}
	if in.Capacity <= 0 {
		return nil, code.New(code.ErrInvalidCapacity)
	}

	shelter := models.Shelter{
		ShelterName:      in.ShelterName,
		ManagedBy:        in.ManagedBy,
		Capacity:         in.Capacity,
		CurrentOccupancy: 0,
		IsActive:         true,
		LastUpdated:      time.Now(),
		StreetNo:         in.StreetNo,
		StreetName:       in.StreetName,
		ShelterContact:   in.ShelterContact,
	}
	if err := s.DB.WithContext(ctx).Create(&shelter).Error; err != nil {
		return nil, code.From(err)
	}
	return &shelter, nil
}

// 5 UpdateOccupancy sets the occupancy with the capacity bound checked by the
// UPDATE itself, so concurrent writers cannot push it past capacity.
func (s *ShelterService) UpdateOccupancy(ctx context.Context, id uint, occupancy int) (*models.Shelter, error) {
	if occupancy < 0 {
		return nil, code.New(code.ErrInvalidOccupancy)
	}

	db := s.DB.WithContext(ctx)
	result := db.Model(&models.Shelter{}).
		Where("id = ? AND capacity >= ?", id, occupancy).
		Updates(map[string]interface{}{
			"current_occupancy": occupancy,
			"last_updated":      time.Now(),
		})
	if result.Error != nil {
		return nil, code.From(result.Error)
	}

	shelter, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// zero rows either means the bound rejected the write or nothing changed
	if result.RowsAffected == 0 && occupancy > shelter.Capacity {
		return nil, code.New(code.ErrOccupancyExceedsCapacity)
	}
	return shelter, nil
}

// 6 ByOccupancy ranks active shelters by fill percentage
func (s *ShelterService) ByOccupancy(ctx context.Context) ([]models.ShelterOccupancy, error) {
	shelters := []models.Shelter{}
	err := s.DB.WithContext(ctx).
		Where("is_active = ? AND capacity > 0", true).
		Order("current_occupancy * 100.0 / capacity DESC").Order("id").
		Limit(occupancyTopN).
		Find(&shelters).Error
	if err != nil {
		return nil, code.From(err)
	}

	ranked := make([]models.ShelterOccupancy, 0, len(shelters))
	for _, sh := range shelters {
		ranked = append(ranked, models.ShelterOccupancy{
			Shelter:             sh,
			OccupancyPercentage: math.Round(sh.OccupancyRate()*100) / 100,
		})
	}
	return ranked, nil
}
