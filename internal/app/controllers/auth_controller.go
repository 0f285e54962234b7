package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/A-Basit02/Disaster-Management-App/internal/app/middleware"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services/container"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/response"
)

// InterfaceAuthController defines the account endpoints
type InterfaceAuthController interface {
	Register()
	Login()
	Profile()
}

// AuthController handles registration, login and profile requests
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates an auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Name        string  `json:"name" example:"Amina Khan"`
	Email       string  `json:"email" example:"amina@example.com"`
	Password    string  `json:"password" example:"secret123"`
	Address     *string `json:"address" example:"12 Canal Road"`
	PhoneNumber *string `json:"phone_number" example:"03001234567"`
	RoleID      *uint   `json:"role_id" example:"1"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" example:"amina@example.com"`
	Password string `json:"password" example:"secret123"`
}

// HandleAuthFunc returns the gin handler for an auth method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "profile":
			controller.Profile()
		default:
			response.Fail(ctx, code.ErrRouteNotFound)
		}
	}
}

func (c *AuthController) service() services.InterfaceAuthService {
	return c.Container.GetService("auth").(services.InterfaceAuthService)
}

// 1 Register creates an account and signs it in
// @Summary      Register
// @Description  Create an account. Without role_id the Citizen role is assigned.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Account details"
// @Success      201  {object}  response.Response{data=services.AuthResult}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      409  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	result, err := c.service().Register(c.Ctx.Request.Context(), services.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		RoleID:      req.RoleID,
	})
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, "User registered successfully", result)
}

// 2 Login exchanges credentials for a token
// @Summary      Login
// @Description  Unknown email and wrong password fail identically.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  response.Response{data=services.AuthResult}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	result, err := c.service().Login(c.Ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.SuccessWithMessage(c.Ctx, "Login successful", result)
}

// 3 Profile returns the caller's account
// @Summary      Profile
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response{data=models.UserProfile}
// @Failure      401  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Router       /auth/profile [get]
// @Security     BearerAuth
func (c *AuthController) Profile() {
	profile, err := c.service().GetProfile(c.Ctx.Request.Context(), middleware.CurrentUserID(c.Ctx))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, profile)
}
