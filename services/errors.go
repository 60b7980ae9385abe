package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is disabled")
	ErrSessionNotFound    = errors.New("no active session for token")
	ErrOTPInvalid         = errors.New("otp is invalid, expired or already used")
)
