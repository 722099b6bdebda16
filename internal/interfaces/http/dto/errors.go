package dto

import "net/http"

// Error codes shared between the domain layer and the HTTP surface
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used for field-level validation failures
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when a name or barcode is already taken
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeCategoryNotFound is used when a product references a missing category
	ErrCodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	// ErrCodeCategoryInUse is used when deleting a category that products reference
	ErrCodeCategoryInUse = "CATEGORY_IN_USE"
	// ErrCodeBarcodeExhausted is used when barcode generation keeps colliding
	ErrCodeBarcodeExhausted = "BARCODE_EXHAUSTED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	// validation failures, including unresolved category references
	ErrCodeValidation:       http.StatusBadRequest,
	ErrCodeCategoryNotFound: http.StatusBadRequest,

	ErrCodeNotFound: http.StatusNotFound,

	// conflicts
	ErrCodeAlreadyExists:    http.StatusConflict,
	ErrCodeCategoryInUse:    http.StatusConflict,
	ErrCodeBarcodeExhausted: http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code,
// defaulting to 500 for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
