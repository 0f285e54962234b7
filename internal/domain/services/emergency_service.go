package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/metrics"
)

// InterfaceEmergencyService manages emergency reports
type InterfaceEmergencyService interface {
	Create(ctx context.Context, userID uint, in CreateReportInput) (*models.EmergencyReport, error)
	ListAll(ctx context.Context) ([]models.EmergencyReport, error)
	ListByUser(ctx context.Context, userID uint) ([]models.EmergencyReport, error)
	Get(ctx context.Context, id uint) (*models.EmergencyReport, error)
	UpdateStatus(ctx context.Context, id uint, status models.ReportStatus) (*models.EmergencyReport, error)
	Analytics(ctx context.Context) ([]models.ReportAnalytics, error)
}

// CreateReportInput is the body of a new report
type CreateReportInput struct {
	DisasterType string
	LocationDesc string
	Latitude     *float64
	Longitude    *float64
}

// EmergencyService implements InterfaceEmergencyService
type EmergencyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEmergencyService creates the emergency report service
func NewEmergencyService(db *gorm.DB, cfg *config.Config) InterfaceEmergencyService {
	return &EmergencyService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Create stores a Pending report for the user
func (s *EmergencyService) Create(ctx context.Context, userID uint, in CreateReportInput) (*models.EmergencyReport, error) {
	in.DisasterType = strings.TrimSpace(in.DisasterType)
	in.LocationDesc = strings.TrimSpace(in.LocationDesc)
	if in.DisasterType == "" || in.LocationDesc == "" {
		return nil, code.Newf(code.ErrValidation, "Disaster type and location description are required")
	}

	report := models.EmergencyReport{
		UserID:       userID,
		DisasterType: in.DisasterType,
		Status:       models.ReportStatusPending,
		DateTime:     time.Now(),
		LocationDesc: in.LocationDesc,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
	}
	if err := s.DB.WithContext(ctx).Create(&report).Error; err != nil {
		return nil, code.From(err)
	}

	metrics.Event(metrics.EventReportCreated)
	return &report, nil
}

// 2 ListAll returns every report with its reporter, newest first
func (s *EmergencyService) ListAll(ctx context.Context) ([]models.EmergencyReport, error) {
	reports := []models.EmergencyReport{}
	err := s.DB.WithContext(ctx).
		Preload("Reporter").
		Order("date_time DESC").Order("id DESC").
		Find(&reports).Error
	if err != nil {
		return nil, code.From(err)
	}
	return reports, nil
}

// 3 ListByUser returns the reports filed by one user, newest first
func (s *EmergencyService) ListByUser(ctx context.Context, userID uint) ([]models.EmergencyReport, error) {
	reports := []models.EmergencyReport{}
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_time DESC").Order("id DESC").
		Find(&reports).Error
	if err != nil {
		return nil, code.From(err)
	}
	return reports, nil
}

// 4 Get returns one report with its reporter
func (s *EmergencyService) Get(ctx context.Context, id uint) (*models.EmergencyReport, error) {
	var report models.EmergencyReport
	err := s.DB.WithContext(ctx).Preload("Reporter").Take(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.New(code.ErrReportNotFound)
	}
	if err != nil {
		return nil, code.From(err)
	}
	return &report, nil
}

// 5 UpdateStatus overwrites the status. It never cascades to tasks.
func (s *EmergencyService) UpdateStatus(ctx context.Context, id uint, status models.ReportStatus) (*models.EmergencyReport, error) {
	if status == "" {
		return nil, code.Newf(code.ErrValidation, "Status is required")
	}
	if !status.Valid() {
		return nil, code.New(code.ErrInvalidReportStatus)
	}

	var report models.EmergencyReport
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&report, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code.New(code.ErrReportNotFound)
			}
			return err
		}
		report.Status = status
		return tx.Model(&report).Update("status", status).Error
	})
	if err != nil {
		return nil, code.From(err)
	}
	return &report, nil
}

// 6 Analytics counts reports per disaster type split by status
func (s *EmergencyService) Analytics(ctx context.Context) ([]models.ReportAnalytics, error) {
	rows := []models.ReportAnalytics{}
	err := s.DB.WithContext(ctx).Model(&models.EmergencyReport{}).
		Select(`disaster_type, COUNT(*) AS count,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS pending,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS in_progress,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS resolved,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS cancelled`,
			models.ReportStatusPending,
			models.ReportStatusInProgress,
			models.ReportStatusResolved,
			models.ReportStatusCancelled,
		).
		Group("disaster_type").
		Order("disaster_type").
		Scan(&rows).Error
	if err != nil {
		return nil, code.From(err)
	}
	return rows, nil
}
