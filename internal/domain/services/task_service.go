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

// InterfaceTaskService manages rescue tasks and their cascades onto reports
type InterfaceTaskService interface {
	Create(ctx context.Context, in CreateTaskInput) (*models.RescueTask, error)
	ListAll(ctx context.Context) ([]models.RescueTask, error)
	ListByWorker(ctx context.Context, workerID uint) ([]models.RescueTask, error)
	Get(ctx context.Context, id uint) (*models.RescueTask, error)
	Assign(ctx context.Context, id, workerID uint) (*models.RescueTask, error)
	UpdateStatus(ctx context.Context, id uint, status models.TaskStatus, remarks *string) (*models.RescueTask, error)
}

// CreateTaskInput is the body of a new task
type CreateTaskInput struct {
	ReportID         uint
	TaskDescription  string
	AssignedWorkerID *uint
	Remarks          *string
}

// TaskService implements InterfaceTaskService
type TaskService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTaskService creates the rescue task service
func NewTaskService(db *gorm.DB, cfg *config.Config) InterfaceTaskService {
	return &TaskService{
		DB:     db,
		Config: cfg,
	}
}

// setReportStatus is the cascade from a task onto its parent report
func setReportStatus(tx *gorm.DB, reportID uint, status models.ReportStatus) error {
	return tx.Model(&models.EmergencyReport{}).Where("id = ?", reportID).Update("status", status).Error
}

func userExists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	err := tx.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func findTask(tx *gorm.DB, id uint) (*models.RescueTask, error) {
	var task models.RescueTask
	err := tx.Take(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.New(code.ErrTaskNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// 1 Create inserts an Assigned task. A worker given at creation moves the report to In Progress.
func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (*models.RescueTask, error) {
	in.TaskDescription = strings.TrimSpace(in.TaskDescription)
	if in.ReportID == 0 || in.TaskDescription == "" {
		return nil, code.Newf(code.ErrValidation, "Report ID and task description are required")
	}
	if in.AssignedWorkerID != nil && *in.AssignedWorkerID == 0 {
		in.AssignedWorkerID = nil
	}

	now := time.Now()
	task := models.RescueTask{
		ReportID:         in.ReportID,
		TaskDescription:  in.TaskDescription,
		AssignedWorkerID: in.AssignedWorkerID,
		TaskStatus:       models.TaskStatusAssigned,
		AssignedDate:     now,
		LastUpdated:      now,
		Remarks:          in.Remarks,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.EmergencyReport{}).Where("id = ?", in.ReportID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return code.Newf(code.ErrReportNotFound, "Emergency report not found")
		}

		if task.AssignedWorkerID != nil {
			ok, err := userExists(tx, *task.AssignedWorkerID)
			if err != nil {
				return err
			}
			if !ok {
				return code.New(code.ErrWorkerNotFound)
			}
		}

		if err := tx.Create(&task).Error; err != nil {
			return err
		}

		if task.AssignedWorkerID != nil {
			return setReportStatus(tx, task.ReportID, models.ReportStatusInProgress)
		}
		return nil
	})
	if err != nil {
		return nil, code.From(err)
	}

	metrics.Event(metrics.EventTaskCreated)
	if task.AssignedWorkerID != nil {
		metrics.Event(metrics.EventTaskAssigned)
	}
	return &task, nil
}

func (s *TaskService) listQuery(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Preload("Report").
		Preload("Report.Reporter").
		Preload("AssignedWorker").
		Order("assigned_date DESC").Order("id DESC")
}

// 2 ListAll returns every task, most recently assigned first
func (s *TaskService) ListAll(ctx context.Context) ([]models.RescueTask, error) {
	tasks := []models.RescueTask{}
	if err := s.listQuery(ctx).Find(&tasks).Error; err != nil {
		return nil, code.From(err)
	}
	return tasks, nil
}

// 3 ListByWorker returns the tasks assigned to one worker
func (s *TaskService) ListByWorker(ctx context.Context, workerID uint) ([]models.RescueTask, error) {
	tasks := []models.RescueTask{}
	if err := s.listQuery(ctx).Where("assigned_worker_id = ?", workerID).Find(&tasks).Error; err != nil {
		return nil, code.From(err)
	}
	return tasks, nil
}

// 4 Get returns one task with its report and worker
func (s *TaskService) Get(ctx context.Context, id uint) (*models.RescueTask, error) {
	var task models.RescueTask
	err := s.DB.WithContext(ctx).
		Preload("Report").
		Preload("Report.Reporter").
		Preload("AssignedWorker").
		Take(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.New(code.ErrTaskNotFound)
	}
	if err != nil {
		return nil, code.From(err)
	}
	return &task, nil
}

// 5 Assign gives the task to a worker, resets it to Assigned and moves the report to In Progress
func (s *TaskService) Assign(ctx context.Context, id, workerID uint) (*models.RescueTask, error) {
	if workerID == 0 {
		return nil, code.Newf(code.ErrValidation, "Worker ID is required")
	}

	var task *models.RescueTask
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findTask(tx, id)
		if err != nil {
			return err
		}

		ok, err := userExists(tx, workerID)
		if err != nil {
			return err
		}
		if !ok {
			return code.New(code.ErrWorkerNotFound)
		}

		now := time.Now()
		err = tx.Model(current).Updates(map[string]interface{}{
			"assigned_worker_id": workerID,
			"task_status":        models.TaskStatusAssigned,
			"assigned_date":      now,
			"last_updated":       now,
		}).Error
		if err != nil {
			return err
		}

		if err := setReportStatus(tx, current.ReportID, models.ReportStatusInProgress); err != nil {
			return err
		}

		task, err = findTask(tx, id)
		return err
	})
	if err != nil {
		return nil, code.From(err)
	}

	metrics.Event(metrics.EventTaskAssigned)
	return task, nil
}

// 6 UpdateStatus changes the task status. Completed resolves the parent report;
// no other status touches the report, so a reopened task leaves it Resolved.
func (s *TaskService) UpdateStatus(ctx context.Context, id uint, status models.TaskStatus, remarks *string) (*models.RescueTask, error) {
	if status == "" {
		return nil, code.Newf(code.ErrValidation, "Task status is required")
	}
	if !status.Valid() {
		return nil, code.New(code.ErrInvalidTaskStatus)
	}

	var task *models.RescueTask
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findTask(tx, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"task_status":  status,
			"last_updated": time.Now(),
		}
		if remarks != nil {
			updates["remarks"] = *remarks
		}
		if err := tx.Model(current).Updates(updates).Error; err != nil {
			return err
		}

		if status == models.TaskStatusCompleted {
			if err := setReportStatus(tx, current.ReportID, models.ReportStatusResolved); err != nil {
				return err
			}
		}

		task, err = findTask(tx, id)
		return err
	})
	if err != nil {
		return nil, code.From(err)
	}

	if status == models.TaskStatusCompleted {
		metrics.Event(metrics.EventTaskCompleted)
	}
	return task, nil
}
