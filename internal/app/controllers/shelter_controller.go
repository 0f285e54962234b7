package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services/container"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/response"
)

// InterfaceShelterController defines the shelter endpoints
type InterfaceShelterController interface {
	ListShelters()
	ListAvailable()
	GetShelter()
	CreateShelter()
	UpdateOccupancy()
	OccupancyAnalytics()
}

// ShelterController handles shelter requests
type ShelterController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewShelterController creates a shelter controller
func NewShelterController(ctx *gin.Context, container *container.ServiceContainer) *ShelterController {
	return &ShelterController{
		Ctx:       ctx,
		Container: container,
	}
}

// ShelterRequest is the body of POST /shelters
type ShelterRequest struct {
	ShelterName    string  `json:"shelter_name" example:"Government High School"`
	ManagedBy      *string `json:"managed_by" example:"District Relief Office"`
	Capacity       int     `json:"capacity" example:"200"`
	StreetNo       *string `json:"street_no" example:"14"`
	StreetName     *string `json:"street_name" example:"University Road"`
	ShelterContact *string `json:"shelter_contact" example:"021-1234567"`
}

// OccupancyRequest is the body of PATCH /shelters/:id/occupancy
type OccupancyRequest struct {
	CurrentOccupancy *int `json:"current_occupancy" example:"120"`
}

// HandleShelterFunc returns the gin handler for a shelter method
func HandleShelterFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewShelterController(ctx, container)

		switch method {
		case "listShelters":
			controller.ListShelters()
		case "listAvailable":
			controller.ListAvailable()
		case "getShelter":
			controller.GetShelter()
		case "createShelter":
			controller.CreateShelter()
		case "updateOccupancy":
			controller.UpdateOccupancy()
		case "occupancyAnalytics":
			controller.OccupancyAnalytics()
		default:
			response.Fail(ctx, code.ErrRouteNotFound)
		}
	}
}

func (c *ShelterController) service() services.InterfaceShelterService {
	return c.Container.GetService("shelter").(services.InterfaceShelterService)
}

// 1 ListShelters returns active shelters
// @Summary      List shelters
// @Tags         Shelters
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Shelter}
// @Router       /shelters [get]
// @Security     BearerAuth
func (c *ShelterController) ListShelters() {
	shelters, err := c.service().ListAll(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, shelters)
}

// 2 ListAvailable returns shelters with free places
// @Summary      List shelters with space
// @Tags         Shelters
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Shelter}
// @Router       /shelters/available [get]
// @Security     BearerAuth
func (c *ShelterController) ListAvailable() {
	shelters, err := c.service().ListAvailable(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, shelters)
}

// 3 GetShelter returns one shelter
// @Summary      Get a shelter
// @Tags         Shelters
// @Produce      json
// @Param        id path int true "Shelter ID"
// @Success      200  {object}  response.Response{data=models.Shelter}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /shelters/{id} [get]
// @Security     BearerAuth
func (c *ShelterController) GetShelter() {
	id, ok := parseID(c.Ctx, "id", "shelter")
	if !ok {
		return
	}

	shelter, err := c.service().Get(c.Ctx.Request.Context(), id)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, shelter)
}

// 4 CreateShelter opens an empty shelter
// @Summary      Create a shelter
// @Tags         Shelters
// @Accept       json
// @Produce      json
// @Param        request body ShelterRequest true "Shelter"
// @Success      201  {object}  response.Response{data=models.Shelter}
// @Failure      400  {object}  response.ErrorResponse
// @Router       /shelters [post]
// @Security     BearerAuth
func (c *ShelterController) CreateShelter() {
	var req ShelterRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	shelter, err := c.service().Create(c.Ctx.Request.Context(), services.CreateShelterInput{
		ShelterName:    req.ShelterName,
		ManagedBy:      req.ManagedBy,
		Capacity:       req.Capacity,
		StreetNo:       req.StreetNo,
		StreetName:     req.StreetName,
		ShelterContact: req.ShelterContact,
	})
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "Shelter created successfully", shelter)
}

// 5 UpdateOccupancy sets how many people a shelter holds
// @Summary      Update occupancy
// @Tags         Shelters
// @Accept       json
// @Produce      json
// @Param        id path int true "Shelter ID"
// @Param        request body OccupancyRequest true "Occupancy"
// @Success      200  {object}  response.Response{data=models.Shelter}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /shelters/{id}/occupancy [patch]
// @Security     BearerAuth
func (c *ShelterController) UpdateOccupancy() {
	id, ok := parseID(c.Ctx, "id", "shelter")
	if !ok {
		return
	}
	var req OccupancyRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}
	if req.CurrentOccupancy == nil {
		response.ParamError(c.Ctx, "Current occupancy is required")
		return
	}

	shelter, err := c.service().UpdateOccupancy(c.Ctx.Request.Context(), id, *req.CurrentOccupancy)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessWithMessage(c.Ctx, "Occupancy updated successfully", shelter)
}

// 6 OccupancyAnalytics ranks the fullest shelters
// @Summary      Shelters by occupancy
// @Tags         Shelters
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.ShelterOccupancy}
// @Failure      403  {object}  response.ErrorResponse
// @Router       /shelters/analytics/occupancy [get]
// @Security     BearerAuth
func (c *ShelterController) OccupancyAnalytics() {
	ranked, err := c.service().ByOccupancy(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, ranked)
}
