package controllers

import (
	"errors"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/response"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// enum tags and the error code each one reports
var tagCodes = map[string]int{
	"report_status":       code.ErrInvalidReportStatus,
	"task_status":         code.ErrInvalidTaskStatus,
	"availability_status": code.ErrInvalidAvailabilityStatus,
}

// RegisterValidators adds the status enum tags to gin's validator
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("controllers: binding engine is not validator/v10")
			return
		}
		rules := map[string]validator.Func{
			"report_status": func(fl validator.FieldLevel) bool {
				return models.ReportStatus(fl.Field().String()).Valid()
			},
			"task_status": func(fl validator.FieldLevel) bool {
				return models.TaskStatus(fl.Field().String()).Valid()
			},
			"availability_status": func(fl validator.FieldLevel) bool {
				return models.AvailabilityStatus(fl.Field().String()).Valid()
			},
		}
		for tag, fn := range rules {
			if registerErr = v.RegisterValidation(tag, fn); registerErr != nil {
				return
			}
		}
	})
	return registerErr
}

// bindJSON binds the request body and writes the failure response itself
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if ec, ok := tagCodes[fe.Tag()]; ok {
				response.Fail(c, ec)
				return false
			}
		}
	}
	response.BindError(c, err)
	return false
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.ParamError(c, "Invalid "+label+" ID")
		return 0, false
	}
	return uint(id), true
}
