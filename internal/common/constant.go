// Package common contains wire-level constants and small helpers shared by
// the notekeeper client and the development backend.
package common

const (
	// StatusSuccess and StatusFailed are the values of the "status" field
	// in every backend response body.
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"

	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	FormContentType     = "application/x-www-form-urlencoded"

	// NetworkErrorMessage is reported when no response could be obtained.
	NetworkErrorMessage = "Network error — check your connection"
)

// Form and payload field names.
const (
	FieldStatus       = "status"
	FieldMessage      = "msg"
	FieldError        = "error"
	FieldUser         = "user"
	FieldAccessToken  = "access_token"
	FieldRefreshToken = "refresh_token"
)
