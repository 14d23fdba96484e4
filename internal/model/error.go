package model

// Standard error codes returned in the API error envelope.
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeUnauthenticated = "UNAUTHENTICATED"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeAlreadyExists   = "ALREADY_EXISTS"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeServerError     = "SERVER_ERROR"
)

// DomainError represents a business-rule failure with a stable error code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeNotFound, "Product not found")
	ErrUserNotFound       = NewDomainError(ErrCodeNotFound, "User not found")
	ErrCartItemNotFound   = NewDomainError(ErrCodeNotFound, "Cart item not found")
	ErrCommentNotFound    = NewDomainError(ErrCodeNotFound, "Comment not found")
	ErrPhoneTaken         = NewDomainError(ErrCodeAlreadyExists, "Phone already registered")
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidCredentials = NewDomainError(ErrCodeUnauthenticated, "Invalid credentials")
	ErrPriceAboveMRP      = NewDomainError(ErrCodeValidation, "sellingPrice cannot exceed mrp")
)

// APIResponse is the uniform success/error envelope returned by every endpoint.
type APIResponse struct {
	OK    bool      `json:"ok"`
	Data  any       `json:"data,omitempty"`
	Error *APIError `json:"error,omitempty"`
}

// APIError is the error payload inside a failed APIResponse.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
