package model

import "net/http"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodePasswordTooShort = "PASSWORD_TOO_SHORT"
	ErrCodeEmailTaken       = "EMAIL_TAKEN"
	ErrCodeUserNotFound     = "USER_NOT_FOUND"
	ErrCodeBadCredentials   = "BAD_CREDENTIALS"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeNotOwner         = "NOT_OWNER"
	ErrCodeNotAuthenticated = "NOT_AUTHENTICATED"
	ErrCodeUploadFailed     = "UPLOAD_FAILED"
	ErrCodeShopSearchFailed = "SHOP_SEARCH_FAILED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business error carrying the HTTP status it maps to.
type DomainError struct {
	Code    string
	Status  int
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code string, status int, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Status:  status,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingUserFields    = NewDomainError(ErrCodeMissingField, http.StatusBadRequest, "Please fill in all required details")
	ErrPasswordTooShort     = NewDomainError(ErrCodePasswordTooShort, http.StatusBadRequest, "Password must be at least 6 characters")
	ErrEmailTaken           = NewDomainError(ErrCodeEmailTaken, http.StatusBadRequest, "Email has already been registered")
	ErrMissingCredentials   = NewDomainError(ErrCodeMissingField, http.StatusBadRequest, "Email or Password is missing")
	ErrUserNotFound         = NewDomainError(ErrCodeUserNotFound, http.StatusNotFound, "User not found, please sign up")
	ErrUserGone             = NewDomainError(ErrCodeUserNotFound, http.StatusBadRequest, "User not found")
	ErrUserUpdateNotFound   = NewDomainError(ErrCodeUserNotFound, http.StatusNotFound, "User not found")
	ErrBadCredentials       = NewDomainError(ErrCodeBadCredentials, http.StatusBadRequest, "Invalid email or password")
	ErrMissingPasswords     = NewDomainError(ErrCodeMissingField, http.StatusBadRequest, "Please enter both old and new password")
	ErrOldPasswordIncorrect = NewDomainError(ErrCodeBadCredentials, http.StatusBadRequest, "Old password is incorrect")
	ErrMissingProductFields = NewDomainError(ErrCodeMissingField, http.StatusBadRequest, "Please fill in all the fields")
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, http.StatusNotFound, "Product not found")
	ErrNotProductOwner      = NewDomainError(ErrCodeNotOwner, http.StatusUnauthorized, "User not authorized to view this product")
	ErrNotAuthenticated     = NewDomainError(ErrCodeNotAuthenticated, http.StatusUnauthorized, "Not authorized, please login")
	ErrImageUploadFailed    = NewDomainError(ErrCodeUploadFailed, http.StatusInternalServerError, "Image could not be uploaded")
	ErrShopSearchFailed     = NewDomainError(ErrCodeShopSearchFailed, http.StatusBadRequest, "No shops found")
)
