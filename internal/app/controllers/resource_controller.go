package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/A-Basit02/Disaster-Management-App/internal/app/middleware"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services/container"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/response"
)

// InterfaceResourceController defines the resource and distribution endpoints
type InterfaceResourceController interface {
	ListResources()
	ListAvailable()
	CreateResource()
	UpdateResource()
	ListDistributions()
	Distribute()
	UpdateDistribution()
}

// ResourceController handles resource and distribution requests
type ResourceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResourceController creates a resource controller
func NewResourceController(ctx *gin.Context, container *container.ServiceContainer) *ResourceController {
	return &ResourceController{
		Ctx:       ctx,
		Container: container,
	}
}

// ResourceRequest is the body of POST /resources
type ResourceRequest struct {
	ResourceType                string  `json:"resource_type" example:"Drinking water"`
	ResourceQuantity            int     `json:"resource_quantity" example:"500"`
	ResourceDesc                *string `json:"resource_desc" example:"1.5 litre bottles"`
	ResourceExpiryDate          *string `json:"resource_expiry_date" example:"2027-01-31"`
	DistributionLocationAddress *string `json:"distribution_location_address" example:"Warehouse 3, Port Road"`
}

// ResourceUpdateRequest is the body of PATCH /resources/:id; absent fields are unchanged
type ResourceUpdateRequest struct {
	ResourceType               *string `json:"resource_type" example:"Drinking water"`
	ResourceQuantity           *int    `json:"resource_quantity" example:"450"`
	ResourceDesc               *string `json:"resource_desc" example:"1.5 litre bottles"`
	ResourceAvailabilityStatus *string `json:"resource_availability_status" binding:"omitempty,availability_status" example:"Available"`
}

// DistributionRequest is the body of POST /resources/distribute
type DistributionRequest struct {
	ResourceID          uint    `json:"resource_id" example:"1"`
	ShelterID           uint    `json:"shelter_id" example:"1"`
	QuantityDistributed int     `json:"quantity_distributed" example:"100"`
	AssignedTo          *uint   `json:"assigned_to" example:"3"`
	Remarks             *string `json:"remarks" example:"Deliver before noon"`
}

// DistributionStatusRequest is the body of PATCH /resources/distributions/:id.
// Timestamps accept YYYY-MM-DD or RFC 3339.
type DistributionStatusRequest struct {
	Status       string  `json:"status" example:"Dispatched"`
	DispatchedAt *string `json:"dispatched_at" example:"2026-05-01T09:00:00Z"`
	DeliveredAt  *string `json:"delivered_at" example:"2026-05-01T15:30:00Z"`
}

// HandleResourceFunc returns the gin handler for a resource method
func HandleResourceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResourceController(ctx, container)

		switch method {
		case "listResources":
			controller.ListResources()
		case "listAvailable":
			controller.ListAvailable()
		case "createResource":
			controller.CreateResource()
		case "updateResource":
			controller.UpdateResource()
		case "listDistributions":
			controller.ListDistributions()
		case "distribute":
			controller.Distribute()
		case "updateDistribution":
			controller.UpdateDistribution()
		default:
			response.Fail(ctx, code.ErrRouteNotFound)
		}
	}
}

func (c *ResourceController) service() services.InterfaceResourceService {
	return c.Container.GetService("resource").(services.InterfaceResourceService)
}

// 1 ListResources returns every resource
// @Summary      List resources
// @Tags         Resources
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Resource}
// @Router       /resources [get]
// @Security     BearerAuth
func (c *ResourceController) ListResources() {
	resources, err := c.service().ListAll(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, resources)
}

// 2 ListAvailable returns resources that can still be distributed
// @Summary      List available resources
// @Tags         Resources
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Resource}
// @Router       /resources/available [get]
// @Security     BearerAuth
func (c *ResourceController) ListAvailable() {
	resources, err := c.service().ListAvailable(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, resources)
}

// 3 CreateResource registers stock owned by the caller
// @Summary      Create a resource
// @Tags         Resources
// @Accept       json
// @Produce      json
// @Param        request body ResourceRequest true "Resource"
// @Success      201  {object}  response.Response{data=models.Resource}
// @Failure      400  {object}  response.ErrorResponse
// @Router       /resources [post]
// @Security     BearerAuth
func (c *ResourceController) CreateResource() {
	var req ResourceRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	resource, err := c.service().Create(c.Ctx.Request.Context(), middleware.CurrentUserID(c.Ctx), services.CreateResourceInput{
		ResourceType:    req.ResourceType,
		Quantity:        req.ResourceQuantity,
		Description:     req.ResourceDesc,
		ExpiryDate:      req.ResourceExpiryDate,
		LocationAddress: req.DistributionLocationAddress,
	})
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Resource created successfully", resource)
}

// 4 UpdateResource changes the supplied fields
// @Summary      Update a resource
// @Tags         Resources
// @Accept       json
// @Produce      json
// @Param        id path int true "Resource ID"
// @Param        request body ResourceUpdateRequest true "Fields to change"
// @Success      200  {object}  response.Response{data=models.Resource}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /resources/{id} [patch]
// @Security     BearerAuth
func (c *ResourceController) UpdateResource() {
	id, ok := parseID(c.Ctx, "id", "resource")
	if !ok {
		return
	}
	var req ResourceUpdateRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	resource, err := c.service().Update(c.Ctx.Request.Context(), id, services.UpdateResourceInput{
		ResourceType:       req.ResourceType,
		Quantity:           req.ResourceQuantity,
		Description:        req.ResourceDesc,
		AvailabilityStatus: req.ResourceAvailabilityStatus,
	})
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessWithMessage(c.Ctx, "Resource updated successfully", resource)
}

// 5 ListDistributions returns every distribution
// @Summary      List distributions
// @Tags         Resources
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.ResourceDistribution}
// @Router       /resources/distributions [get]
// @Security     BearerAuth
func (c *ResourceController) ListDistributions() {
	distributions, err := c.service().ListDistributions(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, distributions)
}

// 6 Distribute sends stock to a shelter
// @Summary      Distribute a resource
// @Description  Records the distribution and draws the quantity from the resource in one transaction.
// @Tags         Resources
// @Accept       json
// @Produce      json
// @Param        request body DistributionRequest true "Distribution"
// @Success      201  {object}  response.Response{data=models.ResourceDistribution}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /resources/distribute [post]
// @Security     BearerAuth
func (c *ResourceController) Distribute() {
	var req DistributionRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	distribution, err := c.service().CreateDistribution(c.Ctx.Request.Context(), services.CreateDistributionInput{
		ResourceID:          req.ResourceID,
		ShelterID:           req.ShelterID,
		QuantityDistributed: req.QuantityDistributed,
		AssignedTo:          req.AssignedTo,
		Remarks:             req.Remarks,
	})
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Resource distribution created successfully", distribution)
}

// 7 UpdateDistribution overwrites a distribution's status
// @Summary      Update distribution status
// @Tags         Resources
// @Accept       json
// @Produce      json
// @Param        id path int true "Distribution ID"
// @Param        request body DistributionStatusRequest true "Status and timestamps"
// @Success      200  {object}  response.Response{data=models.ResourceDistribution}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /resources/distributions/{id} [patch]
// @Security     BearerAuth
func (c *ResourceController) UpdateDistribution() {
	id, ok := parseID(c.Ctx, "id", "distribution")
	if !ok {
		return
	}
	var req DistributionStatusRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	dispatchedAt, ok := optionalTime(c.Ctx, req.DispatchedAt, "dispatched_at")
	if !ok {
		return
	}
	deliveredAt, ok := optionalTime(c.Ctx, req.DeliveredAt, "delivered_at")
	if !ok {
		return
	}

	distribution, err := c.service().UpdateDistributionStatus(c.Ctx.Request.Context(), id, services.UpdateDistributionInput{
		Status:       req.Status,
		DispatchedAt: dispatchedAt,
		DeliveredAt:  deliveredAt,
	})
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessWithMessage(c.Ctx, "Distribution status updated successfully", distribution)
}

func optionalTime(c *gin.Context, value *string, field string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	t, err := services.ParseDate(*value)
	if err != nil {
		response.ParamError(c, "Invalid "+field+", expected YYYY-MM-DD or RFC 3339")
		return nil, false
	}
	return &t, true
}
