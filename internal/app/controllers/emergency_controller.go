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

// InterfaceEmergencyController defines the emergency report endpoints
type InterfaceEmergencyController interface {
	CreateReport()
	ListReports()
	ListMyReports()
	GetReport()
	UpdateStatus()
	Analytics()
}

// EmergencyController handles emergency report requests
type EmergencyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEmergencyController creates an emergency controller
func NewEmergencyController(ctx *gin.Context, container *container.ServiceContainer) *EmergencyController {
	return &EmergencyController{
		Ctx:       ctx,
		Container: container,
	}
}

// EmergencyReportRequest is the body of POST /emergencies
type EmergencyReportRequest struct {
	DisasterType string   `json:"disaster_type" example:"Flood"`
	LocationDesc string   `json:"location_desc" example:"Near the river bridge, Block C"`
	Latitude     *float64 `json:"latitude" example:"24.8607"`
	Longitude    *float64 `json:"longitude" example:"67.0011"`
}

// ReportStatusRequest is the body of PATCH /emergencies/:id/status
type ReportStatusRequest struct {
	Status string `json:"status" binding:"omitempty,report_status" example:"In Progress"`
}

// HandleEmergencyFunc returns the gin handler for an emergency method
func HandleEmergencyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEmergencyController(ctx, container)

		switch method {
		case "createReport":
			controller.CreateReport()
		case "listReports":
			controller.ListReports()
		case "listMyReports":
			controller.ListMyReports()
		case "getReport":
			controller.GetReport()
		case "updateStatus":
			controller.UpdateStatus()
		case "analytics":
			controller.Analytics()
		default:
			response.Fail(ctx, code.ErrRouteNotFound)
		}
	}
}

func (c *EmergencyController) service() services.InterfaceEmergencyService {
	return c.Container.GetService("emergency").(services.InterfaceEmergencyService)
}

// 1 CreateReport files a report for the caller
// @Summary      Report an emergency
// @Tags         Emergencies
// @Accept       json
// @Produce      json
// @Param        request body EmergencyReportRequest true "Report"
// @Success      201  {object}  response.Response{data=models.EmergencyReport}
// @Failure      400  {object}  response.ErrorResponse
// @Router       /emergencies [post]
// @Security     BearerAuth
func (c *EmergencyController) CreateReport() {
	var req EmergencyReportRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	report, err := c.service().Create(c.Ctx.Request.Context(), middleware.CurrentUserID(c.Ctx), services.CreateReportInput{
		DisasterType: req.DisasterType,
		LocationDesc: req.LocationDesc,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Emergency report created successfully", report)
}

// 2 ListReports returns every report
// @Summary      List all reports
// @Tags         Emergencies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.EmergencyReport}
// @Failure      403  {object}  response.ErrorResponse
// @Router       /emergencies [get]
// @Security     BearerAuth
func (c *EmergencyController) ListReports() {
	reports, err := c.service().ListAll(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, reports)
}

// 3 ListMyReports returns the caller's reports
// @Summary      List my reports
// @Tags         Emergencies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.EmergencyReport}
// @Router       /emergencies/my-reports [get]
// @Security     BearerAuth
func (c *EmergencyController) ListMyReports() {
	reports, err := c.service().ListByUser(c.Ctx.Request.Context(), middleware.CurrentUserID(c.Ctx))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, reports)
}

// 4 GetReport returns one report
// @Summary      Get a report
// @Tags         Emergencies
// @Produce      json
// @Param        id path int true "Report ID"
// @Success      200  {object}  response.Response{data=models.EmergencyReport}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /emergencies/{id} [get]
// @Security     BearerAuth
func (c *EmergencyController) GetReport() {
	id, ok := parseID(c.Ctx, "id", "report")
	if !ok {
		return
	}

	report, err := c.service().Get(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, report)
}

// 5 UpdateStatus overwrites a report's status
// @Summary      Update report status
// @Tags         Emergencies
// @Accept       json
// @Produce      json
// @Param        id path int true "Report ID"
// @Param        request body ReportStatusRequest true "Pending, In Progress, Resolved or Cancelled"
// @Success      200  {object}  response.Response{data=models.EmergencyReport}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /emergencies/{id}/status [patch]
// @Security     BearerAuth
func (c *EmergencyController) UpdateStatus() {
	id, ok := parseID(c.Ctx, "id", "report")
	if !ok {
		return
	}
	var req ReportStatusRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	report, err := c.service().UpdateStatus(c.Ctx.Request.Context(), id, models.ReportStatus(req.Status))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessWithMessage(c.Ctx, "Report status updated successfully", report)
}

// 6 Analytics counts reports per disaster type and status
// @Summary      Report analytics
// @Tags         Emergencies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.ReportAnalytics}
// @Failure      403  {object}  response.ErrorResponse
// @Router       /emergencies/analytics [get]
// @Security     BearerAuth
func (c *EmergencyController) Analytics() {
	rows, err := c.service().Analytics(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rows)
}
