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
)

// InterfaceNotificationService manages broadcast notifications
type InterfaceNotificationService interface {
	ListActive(ctx context.Context) ([]models.Notification, error)
	ListAll(ctx context.Context) ([]models.Notification, error)
	Get(ctx context.Context, id uint) (*models.Notification, error)
	Create(ctx context.Context, createdBy uint, title, message string) (*models.Notification, error)
	Update(ctx context.Context, id uint, in UpdateNotificationInput) (*models.Notification, error)
	Remove(ctx context.Context, id uint) error
}

// UpdateNotificationInput holds the fields to change; nil or empty text means unchanged
type UpdateNotificationInput struct {
	Title    *string
	Message  *string
	IsActive *bool
}

// NotificationService implements InterfaceNotificationService
type NotificationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewNotificationService creates the notification service
func NewNotificationService(db *gorm.DB, cfg *config.Config) InterfaceNotificationService {
	return &NotificationService{
		DB:     db,
		Config: cfg,
	}
}

func (s *NotificationService) list(ctx context.Context, activeOnly bool) ([]models.Notification, error) {
	notifications := []models.Notification{}
	query := s.DB.WithContext(ctx).Preload("Creator")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("datetime_sent DESC").Order("id DESC").Find(&notifications).Error
	if err != nil {
		return nil, code.From(err)
	}
	return notifications, nil
}

// 1 ListActive returns active notifications, newest first
func (s *NotificationService) ListActive(ctx context.Context) ([]models.Notification, error) {
	return s.list(ctx, true)
}

// 2 ListAll includes removed notifications
func (s *NotificationService) ListAll(ctx context.Context) ([]models.Notification, error) {
	return s.list(ctx, false)
}

// 3 Get returns one notification with its author
func (s *NotificationService) Get(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	err := s.DB.WithContext(ctx).Preload("Creator").Take(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.New(code.ErrNotificationNotFound)
	}
	if err != nil {
		return nil, code.From(err)
	}
	return &n, nil
}

// 4 Create sends an active notification now
func (s *NotificationService) Create(ctx context.Context, createdBy uint, title, message string) (*models.Notification, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" || message == "" {
		return nil, code.Newf(code.ErrValidation, "Title and message are required")
	}

	n := models.Notification{
		Title:        title,
		Message:      message,
		DatetimeSent: time.Now(),
		IsActive:     true,
	}
	if createdBy != 0 {
		n.CreatedBy = &createdBy
	}
	if err := s.DB.WithContext(ctx).Create(&n).Error; err != nil {
		return nil, code.From(err)
	}
	return &n, nil
}

// 5 Update changes only the supplied fields
func (s *NotificationService) Update(ctx context.Context, id uint, in UpdateNotificationInput) (*models.Notification, error) {
	updates := map[string]interface{}{}
	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		updates["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Message != nil && strings.TrimSpace(*in.Message) != "" {
		updates["message"] = strings.TrimSpace(*in.Message)
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if len(updates) == 0 {
		return nil, code.New(code.ErrNoFieldsToUpdate)
	}

	var n models.Notification
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&n, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code.New(code.ErrNotificationNotFound)
			}
			return err
		}
		if err := tx.Model(&n).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Take(&n, id).Error
	})
	if err != nil {
		return nil, code.From(err)
	}
	return &n, nil
}

// 6 Remove deactivates the notification; the row is kept
func (s *NotificationService) Remove(ctx context.Context, id uint) error {
	result := s.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return code.From(result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// already inactive rows report zero affected on some drivers
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return nil
}
