package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/pkg/logger"
)

// Response is the success envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Code  int    `json:"code" example:"104001"`
	Error string `json:"error" example:"Occupancy cannot exceed capacity"`
}

// Success writes a 200 with the default message
func Success(c *gin.Context, data interface{}) {
	SuccessWithMessage(c, code.GetMessage(code.ErrSuccess), data)
}

// SuccessWithMessage writes a 200 with a custom message
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: message,
		Data:    data,
	})
}

// Created writes a 201
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    code.ErrSuccess,
		Message: message,
		Data:    data,
	})
}

// Fail writes the default message of errorCode
func Fail(c *gin.Context, errorCode int) {
	FailWithMessage(c, errorCode, code.GetMessage(errorCode))
}

// FailWithMessage writes errorCode with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), ErrorResponse{
		Code:  errorCode,
		Error: message,
	})
}

// AbortWithCode writes the failure and stops the handler chain
func AbortWithCode(c *gin.Context, errorCode int) {
	Fail(c, errorCode)
	c.Abort()
}

// Error maps a service error onto the failure envelope. Server-side failures
// are logged with their cause; the client only sees the generic message.
func Error(c *gin.Context, err error) {
	appErr := code.From(err)
	if appErr.Status() >= http.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Int("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}
	FailWithMessage(c, appErr.Code, appErr.Message)
}

// ParamError responds with a validation failure
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrValidation, message)
}

// BindError responds with a binding failure
func BindError(c *gin.Context, err error) {
	FailWithMessage(c, code.ErrBind, "Invalid request parameters: "+err.Error())
}

// NotFound responds with 404
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrRecordNotFound)
	}
	FailWithMessage(c, code.ErrRecordNotFound, message)
}
