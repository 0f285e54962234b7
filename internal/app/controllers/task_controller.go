package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/A-Basit02/Disaster-Management-App/internal/app/middleware"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services/container"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/response"
)

// InterfaceTaskController defines the rescue task endpoints
type InterfaceTaskController interface {
	ListMyTasks()
	ListTasks()
	GetTask()
	CreateTask()
	AssignTask()
	UpdateTaskStatus()
}

// TaskController handles rescue task requests
type TaskController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTaskController creates a task controller
func NewTaskController(ctx *gin.Context, container *container.ServiceContainer) *TaskController {
	return &TaskController{
		Ctx:       ctx,
		Container: container,
	}
}

// TaskRequest is the body of POST /tasks
type TaskRequest struct {
	ReportID         uint    `json:"report_id" example:"1"`
	TaskDescription  string  `json:"task_description" example:"Evacuate residents of Block C"`
	AssignedWorkerID *uint   `json:"assigned_worker_id" example:"2"`
	Remarks          *string `json:"remarks" example:"Bring two boats"`
}

// AssignTaskRequest is the body of PATCH /tasks/:id/assign
type AssignTaskRequest struct {
	AssignedWorkerID uint `json:"assigned_worker_id" example:"2"`
}

// TaskStatusRequest is the body of PATCH /tasks/:id/status
type TaskStatusRequest struct {
	TaskStatus string  `json:"task_status" binding:"omitempty,task_status" example:"Completed"`
	Remarks    *string `json:"remarks" example:"Family moved to shelter"`
}

// HandleTaskFunc returns the gin handler for a task method
func HandleTaskFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTaskController(ctx, container)

		switch method {
		case "listMyTasks":
			controller.ListMyTasks()
		case "listTasks":
			controller.ListTasks()
		case "getTask":
			controller.GetTask()
		case "createTask":
			controller.CreateTask()
		case "assignTask":
			controller.AssignTask()
		case "updateTaskStatus":
			controller.UpdateTaskStatus()
		default:
			response.Fail(ctx, code.ErrRouteNotFound)
		}
	}
}

func (c *TaskController) service() services.InterfaceTaskService {
	return c.Container.GetService("task").(services.InterfaceTaskService)
}

// 1 ListMyTasks returns the tasks assigned to the caller
// @Summary      List my tasks
// @Tags         Tasks
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.RescueTask}
// @Failure      403  {object}  response.ErrorResponse
// @Router       /tasks/my-tasks [get]
// @Security     BearerAuth
func (c *TaskController) ListMyTasks() {
	tasks, err := c.service().ListByWorker(c.Ctx.Request.Context(), middleware.CurrentUserID(c.Ctx))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tasks)
}

// 2 ListTasks returns every task
// @Summary      List all tasks
// @Tags         Tasks
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.RescueTask}
// @Failure      403  {object}  response.ErrorResponse
// @Router       /tasks [get]
// @Security     BearerAuth
func (c *TaskController) ListTasks() {
	tasks, err := c.service().ListAll(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tasks)
}

// 3 GetTask returns one task
// @Summary      Get a task
// @Tags         Tasks
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200  {object}  response.Response{data=models.RescueTask}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /tasks/{id} [get]
// @Security     BearerAuth
func (c *TaskController) GetTask() {
	id, ok := parseID(c.Ctx, "id", "task")
	if !ok {
		return
	}

	task, err := c.service().Get(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, task)
}

// 4 CreateTask opens a task on a report
// @Summary      Create a task
// @Description  Assigning a worker at creation moves the report to In Progress.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        request body TaskRequest true "Task"
// @Success      201  {object}  response.Response{data=models.RescueTask}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /tasks [post]
// @Security     BearerAuth
func (c *TaskController) CreateTask() {
	var req TaskRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	task, err := c.service().Create(c.Ctx.Request.Context(), services.CreateTaskInput{
		ReportID:         req.ReportID,
		TaskDescription:  req.TaskDescription,
		AssignedWorkerID: req.AssignedWorkerID,
		Remarks:          req.Remarks,
	})
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Rescue task created successfully", task)
}

// 5 AssignTask gives a task to a worker
// @Summary      Assign a task
// @Description  Resets the task to Assigned and moves the report to In Progress.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id path int true "Task ID"
// @Param        request body AssignTaskRequest true "Worker"
// @Success      200  {object}  response.Response{data=models.RescueTask}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /tasks/{id}/assign [patch]
// @Security     BearerAuth
func (c *TaskController) AssignTask() {
	id, ok := parseID(c.Ctx, "id", "task")
	if !ok {
		return
	}
	var req AssignTaskRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	task, err := c.service().Assign(c.Ctx.Request.Context(), id, req.AssignedWorkerID)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessWithMessage(c.Ctx, "Task assigned successfully", task)
}

// 6 UpdateTaskStatus changes a task's status
// @Summary      Update task status
// @Description  Completed resolves the parent report. No other status changes the report.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id path int true "Task ID"
// @Param        request body TaskStatusRequest true "Assigned, In Progress, Completed or Cancelled"
// @Success      200  {object}  response.Response{data=models.RescueTask}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /tasks/{id}/status [patch]
// @Security     BearerAuth
func (c *TaskController) UpdateTaskStatus() {
	id, ok := parseID(c.Ctx, "id", "task")
	if !ok {
		return
	}
	var req TaskStatusRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	task, err := c.service().UpdateStatus(c.Ctx.Request.Context(), id, models.TaskStatus(req.TaskStatus), req.Remarks)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessWithMessage(c.Ctx, "Task status updated successfully", task)
}
