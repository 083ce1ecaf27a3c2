package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserInactive       = errors.New("user account is inactive")
)

// OTP errors
var (
	ErrOTPExpired     = errors.New("otp has expired")
	ErrOTPInvalid     = errors.New("invalid otp code")
	ErrOTPMaxAttempts = errors.New("maximum otp attempts exceeded")
	ErrOTPNotFound    = errors.New("otp not found")
	ErrOTPResendLimit = errors.New("otp resend limit exceeded")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Attendance errors
var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidEntryType = errors.New("entry type must be check-in or check-out")
	ErrPartyRequired    = errors.New("party selection is required for check-in")
	ErrPartyInvalid     = errors.New("invalid party selected")
)

// Party errors
var (
	ErrPartyNotFound      = errors.New("party not found")
	ErrPartyNameRequired  = errors.New("party name is required")
	ErrPartyNameTaken     = errors.New("party name already exists")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
	ErrResourceNotFound = errors.New("resource not found")
)
