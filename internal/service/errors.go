package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrImageHostNotConfigured = errors.New("image host is not configured")
)
