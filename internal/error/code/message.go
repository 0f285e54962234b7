package code

var codeMessageMap = map[int]string{
	ErrSuccess:          "Success",
	ErrUnknown:          "Internal server error",
	ErrBind:             "Invalid request parameters",
	ErrValidation:       "Validation failed",
	ErrTokenInvalid:     "Invalid or expired token",
	ErrTooManyRequests:  "Too many requests",
	ErrTokenMissing:     "Access token required",
	ErrForbidden:        "Insufficient permissions",
	ErrRouteNotFound:    "Route not found",
	ErrNoFieldsToUpdate: "No fields to update",

	ErrUserNotFound:          "User not found",
	ErrUserAlreadyExist:      "Email already registered",
	ErrUserPasswordIncorrect: "Invalid email or password",
	ErrRoleNotFound:          "Role does not exist",
	ErrRolesMissing:          "No roles found in database. Please initialize roles first.",

	ErrReportNotFound:      "Report not found",
	ErrInvalidReportStatus: "Invalid status",

	ErrTaskNotFound:      "Task not found",
	ErrInvalidTaskStatus: "Invalid task status",
	ErrWorkerNotFound:    "Assigned worker not found",

	ErrShelterNotFound:          "Shelter not found",
	ErrOccupancyExceedsCapacity: "Occupancy cannot exceed capacity",
	ErrInvalidCapacity:          "Capacity must be greater than zero",
	ErrInvalidOccupancy:         "Occupancy cannot be negative",

	ErrResourceNotFound:          "Resource not found",
	ErrResourceNotAvailable:      "Resource is not available",
	ErrInsufficientQuantity:      "Insufficient resource quantity",
	ErrInvalidQuantity:           "Quantity must be greater than zero",
	ErrInvalidAvailabilityStatus: "Invalid availability status",
	ErrDistributionNotFound:      "Distribution not found",

	ErrNotificationNotFound: "Notification not found",

	ErrDatabase:        "Server error",
	ErrRecordNotFound:  "Record not found",
	ErrMigrationFailed: "Migration failed",
}

var codeStatusMap = map[int]int{
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,
	ErrTokenMissing:     StatusUnauthorized,
	ErrForbidden:        StatusForbidden,
	ErrRouteNotFound:    StatusNotFound,
	ErrNoFieldsToUpdate: StatusBadRequest,

	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusConflict,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrRoleNotFound:          StatusBadRequest,
	ErrRolesMissing:          StatusInternalServerError,

	ErrReportNotFound:      StatusNotFound,
	ErrInvalidReportStatus: StatusBadRequest,

	ErrTaskNotFound:      StatusNotFound,
	ErrInvalidTaskStatus: StatusBadRequest,
	ErrWorkerNotFound:    StatusNotFound,

	ErrShelterNotFound:          StatusNotFound,
	ErrOccupancyExceedsCapacity: StatusBadRequest,
	ErrInvalidCapacity:          StatusBadRequest,
	ErrInvalidOccupancy:         StatusBadRequest,

	ErrResourceNotFound:          StatusNotFound,
	ErrResourceNotAvailable:      StatusBadRequest,
	ErrInsufficientQuantity:      StatusBadRequest,
	ErrInvalidQuantity:           StatusBadRequest,
	ErrInvalidAvailabilityStatus: StatusBadRequest,
	ErrDistributionNotFound:      StatusNotFound,

	ErrNotificationNotFound: StatusNotFound,

	ErrDatabase:        StatusInternalServerError,
	ErrRecordNotFound:  StatusNotFound,
	ErrMigrationFailed: StatusInternalServerError,
}

// GetMessage returns the default message for a code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for a code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
