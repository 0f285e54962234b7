package code

// HTTP status codes.
const (
	// StatusOK - 200
	StatusOK = 200
	// StatusCreated - 201
	StatusCreated = 201
	// StatusBadRequest - 400: invalid or missing input.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: missing credential or bad login.
	StatusUnauthorized = 401
	// StatusForbidden - 403: invalid credential or role check failure.
	StatusForbidden = 403
	// StatusNotFound - 404
	StatusNotFound = 404
	// StatusConflict - 409
	StatusConflict = 409
	// StatusTooManyRequests - 429
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500
	StatusInternalServerError = 500
)

// General codes (100xxx).
const (
	// ErrSuccess - 200
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500
	ErrUnknown
	// ErrBind - 400: request body could not be bound.
	ErrBind
	// ErrValidation - 400
	ErrValidation
	// ErrTokenInvalid - 403: bad signature, expired, or user gone.
	ErrTokenInvalid
	// ErrTooManyRequests - 429
	ErrTooManyRequests
	// ErrTokenMissing - 401
	ErrTokenMissing
	// ErrForbidden - 403: role check failure.
	ErrForbidden
	// ErrRouteNotFound - 404
	ErrRouteNotFound
	// ErrNoFieldsToUpdate - 400
	ErrNoFieldsToUpdate
)

// User and auth codes (101xxx).
const (
	// ErrUserNotFound - 404
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: shared by unknown email and wrong password.
	ErrUserPasswordIncorrect
	// ErrRoleNotFound - 400
	ErrRoleNotFound
	// ErrRolesMissing - 500: role table empty at registration.
	ErrRolesMissing
)

// Emergency report codes (102xxx).
const (
	// ErrReportNotFound - 404
	ErrReportNotFound int = iota + 102000
	// ErrInvalidReportStatus - 400
	ErrInvalidReportStatus
)

// Rescue task codes (103xxx).
const (
	// ErrTaskNotFound - 404
	ErrTaskNotFound int = iota + 103000
	// ErrInvalidTaskStatus - 400
	ErrInvalidTaskStatus
	// ErrWorkerNotFound - 404
	ErrWorkerNotFound
)

// Shelter codes (104xxx).
const (
	// ErrShelterNotFound - 404
	ErrShelterNotFound int = iota + 104000
	// ErrOccupancyExceedsCapacity - 400
	ErrOccupancyExceedsCapacity
	// ErrInvalidCapacity - 400
	ErrInvalidCapacity
	// ErrInvalidOccupancy - 400
	ErrInvalidOccupancy
)

// Resource and distribution codes (105xxx).
const (
	// ErrResourceNotFound - 404
	ErrResourceNotFound int = iota + 105000
	// ErrResourceNotAvailable - 400
	ErrResourceNotAvailable
	// ErrInsufficientQuantity - 400
	ErrInsufficientQuantity
	// ErrInvalidQuantity - 400
	ErrInvalidQuantity
	// ErrInvalidAvailabilityStatus - 400
	ErrInvalidAvailabilityStatus
	// ErrDistributionNotFound - 404
	ErrDistributionNotFound
)

// Notification codes (106xxx).
const (
	// ErrNotificationNotFound - 404
	ErrNotificationNotFound int = iota + 106000
)

// Database codes (109xxx).
const (
	// ErrDatabase - 500
	ErrDatabase int = iota + 109000
	// ErrRecordNotFound - 404
	ErrRecordNotFound
	// ErrMigrationFailed - 500
	ErrMigrationFailed
)
