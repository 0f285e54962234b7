package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
)

func TestTaskCreate(t *testing.T) {
	f := newFixture(t)
	svc := services.NewTaskService(f.db, f.cfg)
	citizen := f.user(t, "c@example.com", models.RoleCitizen)
	worker := f.user(t, "w@example.com", models.RoleRescueWorker)

	t.Run("without worker leaves report pending", func(t *testing.T) {
		r := f.report(t, citizen.ID, "Flood")
		task, err := svc.Create(f.ctx, services.CreateTaskInput{ReportID: r.ID, TaskDescription: "Survey area"})
		require.NoError(t, err)
		assert.Equal(t, models.TaskStatusAssigned, task.TaskStatus)
		assert.Nil(t, task.AssignedWorkerID)
		assert.Equal(t, models.ReportStatusPending, f.reportStatus(t, r.ID))
	})

	t.Run("zero worker is treated as none", func(t *testing.T) {
		r := f.report(t, citizen.ID, "Flood")
		task, err := svc.Create(f.ctx, services.CreateTaskInput{
			ReportID: r.ID, TaskDescription: "Survey", AssignedWorkerID: uintPtr(0),
		})
		require.NoError(t, err)
		assert.Nil(t, task.AssignedWorkerID)
		assert.Equal(t, models.ReportStatusPending, f.reportStatus(t, r.ID))
	})

	t.Run("with worker moves report in progress", func(t *testing.T) {
		r := f.report(t, citizen.ID, "Fire")
		task, err := svc.Create(f.ctx, services.CreateTaskInput{
			ReportID: r.ID, TaskDescription: "Evacuate", AssignedWorkerID: &worker.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, task.AssignedWorkerID)
		assert.Equal(t, worker.ID, *task.AssignedWorkerID)
		assert.Equal(t, models.ReportStatusInProgress, f.reportStatus(t, r.ID))
	})

	t.Run("unknown report or worker", func(t *testing.T) {
		_, err := svc.Create(f.ctx, services.CreateTaskInput{ReportID: 999, TaskDescription: "x"})
		assert.True(t, code.Is(err, code.ErrReportNotFound))

		r := f.report(t, citizen.ID, "Storm")
		_, err = svc.Create(f.ctx, services.CreateTaskInput{
			ReportID: r.ID, TaskDescription: "x", AssignedWorkerID: uintPtr(999),
		})
		assert.True(t, code.Is(err, code.ErrWorkerNotFound))
		assert.Equal(t, models.ReportStatusPending, f.reportStatus(t, r.ID), "rolled back")

		var count int64
		require.NoError(t, f.db.Model(&models.RescueTask{}).Where("report_id = ?", r.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Create(f.ctx, services.CreateTaskInput{ReportID: 1, TaskDescription: "  "})
		assert.True(t, code.Is(err, code.ErrValidation))
	})
}

func TestTaskAssign(t *testing.T) {
	f := newFixture(t)
	svc := services.NewTaskService(f.db, f.cfg)
	citizen := f.user(t, "c@example.com", models.RoleCitizen)
	worker := f.user(t, "w@example.com", models.RoleRescueWorker)
	r := f.report(t, citizen.ID, "Flood")

	task, err := svc.Create(f.ctx, services.CreateTaskInput{ReportID: r.ID, TaskDescription: "Boats"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(f.ctx, task.ID, models.TaskStatusInProgress, nil)
	require.NoError(t, err)

	assigned, err := svc.Assign(f.ctx, task.ID, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusAssigned, assigned.TaskStatus, "assign resets status")
	require.NotNil(t, assigned.AssignedWorkerID)
	assert.Equal(t, worker.ID, *assigned.AssignedWorkerID)
	assert.Equal(t, models.ReportStatusInProgress, f.reportStatus(t, r.ID))

	_, err = svc.Assign(f.ctx, task.ID, 999)
	assert.True(t, code.Is(err, code.ErrWorkerNotFound))
	_, err = svc.Assign(f.ctx, 999, worker.ID)
	assert.True(t, code.Is(err, code.ErrTaskNotFound))
	_, err = svc.Assign(f.ctx, task.ID, 0)
	assert.True(t, code.Is(err, code.ErrValidation))

	mine, err := svc.ListByWorker(f.ctx, worker.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Report)
	require.NotNil(t, mine[0].Report.Reporter)
	assert.Equal(t, citizen.Email, mine[0].Report.Reporter.Email)
}

func TestTaskUpdateStatusCascade(t *testing.T) {
	f := newFixture(t)
	svc := services.NewTaskService(f.db, f.cfg)
	citizen := f.user(t, "c@example.com", models.RoleCitizen)
	worker := f.user(t, "w@example.com", models.RoleRescueWorker)
	r := f.report(t, citizen.ID, "Flood")

	task, err := svc.Create(f.ctx, services.CreateTaskInput{
		ReportID: r.ID, TaskDescription: "Rescue family", AssignedWorkerID: &worker.ID, Remarks: strPtr("initial"),
	})
	require.NoError(t, err)

	// remarks survive an update that omits them
	updated, err := svc.UpdateStatus(f.ctx, task.ID, models.TaskStatusInProgress, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Remarks)
	assert.Equal(t, "initial", *updated.Remarks)
	assert.Equal(t, models.ReportStatusInProgress, f.reportStatus(t, r.ID))

	// a cancelled report is still resolved by completion
	_, err = services.NewEmergencyService(f.db, f.cfg).UpdateStatus(f.ctx, r.ID, models.ReportStatusCancelled)
	require.NoError(t, err)
	updated, err = svc.UpdateStatus(f.ctx, task.ID, models.TaskStatusCompleted, strPtr("done"))
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, updated.TaskStatus)
	assert.Equal(t, "done", *updated.Remarks)
	assert.Equal(t, models.ReportStatusResolved, f.reportStatus(t, r.ID))

	// reopening the task does not revert the report
	_, err = svc.UpdateStatus(f.ctx, task.ID, models.TaskStatusInProgress, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusResolved, f.reportStatus(t, r.ID))

	_, err = svc.UpdateStatus(f.ctx, task.ID, "Paused", nil)
	assert.True(t, code.Is(err, code.ErrInvalidTaskStatus))
	_, err = svc.UpdateStatus(f.ctx, 999, models.TaskStatusCompleted, nil)
	assert.True(t, code.Is(err, code.ErrTaskNotFound))
}

func TestTaskListOrdering(t *testing.T) {
	f := newFixture(t)
	svc := services.NewTaskService(f.db, f.cfg)
	citizen := f.user(t, "c@example.com", models.RoleCitizen)
	r := f.report(t, citizen.ID, "Flood")

	first, err := svc.Create(f.ctx, services.CreateTaskInput{ReportID: r.ID, TaskDescription: "one"})
	require.NoError(t, err)
	second, err := svc.Create(f.ctx, services.CreateTaskInput{ReportID: r.ID, TaskDescription: "two"})
	require.NoError(t, err)

	all, err := svc.ListAll(f.ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	got, err := svc.Get(f.ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssignedWorker)
	require.NotNil(t, got.Report)
	assert.Equal(t, "Flood", got.Report.DisasterType)
}
