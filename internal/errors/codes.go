package errors

// Error code constants returned in the error response envelope.
// Format: CATEGORY_SPECIFIC_DETAIL. Frontends map these to messages.

const (
	// Authentication (AUTH_)
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"

	// Authorization (AUTHZ_)
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"
	AuthzStaffOnly    = "AUTHZ_STAFF_ONLY"

	// Validation (VALIDATION_)
	ValidationInvalidInput    = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID       = "VALIDATION_INVALID_ID"
	ValidationInvalidQuantity = "VALIDATION_INVALID_QUANTITY"
	ValidationUnsupportedSort = "VALIDATION_UNSUPPORTED_SORT"
	ValidationInvalidPageSize = "VALIDATION_INVALID_PAGE_SIZE"

	// Resources (RESOURCE_)
	ResourceNotFound   = "RESOURCE_NOT_FOUND"
	RegionNotFound     = "REGION_NOT_FOUND"
	DistilleryNotFound = "DISTILLERY_NOT_FOUND"
	ProductNotFound    = "PRODUCT_NOT_FOUND"

	// Uploads (UPLOAD_)
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed          = "UPLOAD_FAILED"

	// Internal (INTERNAL_)
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
