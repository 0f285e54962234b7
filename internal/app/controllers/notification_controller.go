package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/A-Basit02/Disaster-Management-App/internal/app/middleware"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services/container"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/response"
)

// InterfaceNotificationController defines the notification endpoints
type InterfaceNotificationController interface {
	ListActive()
	ListAll()
	GetNotification()
	CreateNotification()
	UpdateNotification()
	DeleteNotification()
}

// NotificationController handles notification requests
type NotificationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNotificationController creates a notification controller
func NewNotificationController(ctx *gin.Context, container *container.ServiceContainer) *NotificationController {
	return &NotificationController{
		Ctx:       ctx,
		Container: container,
	}
}

// NotificationRequest is the body of POST /notifications
type NotificationRequest struct {
	Title   string `json:"title" example:"Flood warning"`
	Message string `json:"message" example:"Move to higher ground before 6pm."`
}

// NotificationUpdateRequest is the body of PATCH /notifications/:id
type NotificationUpdateRequest struct {
	Title    *string `json:"title" example:"Flood warning lifted"`
	Message  *string `json:"message" example:"Water levels are back to normal."`
	IsActive *bool   `json:"is_active" example:"true"`
}

// HandleNotificationFunc returns the gin handler for a notification method
func HandleNotificationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNotificationController(ctx, container)

		switch method {
		case "listActive":
			controller.ListActive()
		case "listAll":
			controller.ListAll()
		case "getNotification":
			controller.GetNotification()
		case "createNotification":
			controller.CreateNotification()
		case "updateNotification":
			controller.UpdateNotification()
		case "deleteNotification":
			controller.DeleteNotification()
		default:
			response.Fail(ctx, code.ErrRouteNotFound)
		}
	}
}

func (c *NotificationController) service() services.InterfaceNotificationService {
	return c.Container.GetService("notification").(services.InterfaceNotificationService)
}

// 1 ListActive returns notifications currently shown to users
// @Summary      List active notifications
// @Tags         Notifications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Notification}
// @Router       /notifications/active [get]
// @Security     BearerAuth
func (c *NotificationController) ListActive() {
	notifications, err := c.service().ListActive(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, notifications)
}

// 2 ListAll includes removed notifications
// @Summary      List all notifications
// @Tags         Notifications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Notification}
// @Failure      403  {object}  response.ErrorResponse
// @Router       /notifications [get]
// @Security     BearerAuth
func (c *NotificationController) ListAll() {
	notifications, err := c.service().ListAll(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, notifications)
}

// 3 GetNotification returns one notification
// @Summary      Get a notification
// @Tags         Notifications
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200  {object}  response.Response{data=models.Notification}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /notifications/{id} [get]
// @Security     BearerAuth
func (c *NotificationController) GetNotification() {
	id, ok := parseID(c.Ctx, "id", "notification")
	if !ok {
		return
	}

	n, err := c.service().Get(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, n)
}

// 4 CreateNotification broadcasts a message
// @Summary      Create a notification
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Param        request body NotificationRequest true "Notification"
// @Success      201  {object}  response.Response{data=models.Notification}
// @Failure      400  {object}  response.ErrorResponse
// @Router       /notifications [post]
// @Security     BearerAuth
func (c *NotificationController) CreateNotification() {
	var req NotificationRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	n, err := c.service().Create(c.Ctx.Request.Context(), middleware.CurrentUserID(c.Ctx), req.Title, req.Message)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Notification created successfully", n)
}

// 5 UpdateNotification changes the supplied fields
// @Summary      Update a notification
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Param        id path int true "Notification ID"
// @Param        request body NotificationUpdateRequest true "Fields to change"
// @Success      200  {object}  response.Response{data=models.Notification}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /notifications/{id} [patch]
// @Security     BearerAuth
func (c *NotificationController) UpdateNotification() {
	id, ok := parseID(c.Ctx, "id", "notification")
	if !ok {
		return
	}
	var req NotificationUpdateRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	n, err := c.service().Update(c.Ctx.Request.Context(), id, services.UpdateNotificationInput{
		Title:    req.Title,
		Message:  req.Message,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessWithMessage(c.Ctx, "Notification updated successfully", n)
}

// 6 DeleteNotification deactivates a notification
// @Summary      Delete a notification
// @Description  The row is kept with is_active=false.
// @Tags         Notifications
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorResponse
// @Router       /notifications/{id} [delete]
// @Security     BearerAuth
func (c *NotificationController) DeleteNotification() {
	id, ok := parseID(c.Ctx, "id", "notification")
	if !ok {
		return
	}

	if err := c.service().Remove(c.Ctx.Request.Context(), id); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessWithMessage(c.Ctx, "Notification deleted successfully", nil)
}
