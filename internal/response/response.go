package response

import "github.com/gin-gonic/gin"

// Error codes surfaced to API callers
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeStorage    = "STORAGE_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// AppError is the error type carried from the service layer to handlers
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Code + ": " + e.Message + " (" + e.Details + ")"
	}
	return e.Code + ": " + e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// ErrorDetail is the wire form of a failed request
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for error responses
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SendError writes an error envelope and aborts the request
func SendError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// SendJSON writes a success payload. Payloads are sent raw, without an
// envelope, matching what board clients consume.
func SendJSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}
