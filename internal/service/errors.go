package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid  = errors.New("token is expired or invalid")
	ErrTokenIsExpired           = errors.New("token is expired")
	ErrTokenIsMalformed         = errors.New("token is malformed")
	ErrTokenSignatureIsInvalid  = errors.New("token signature is invalid")
	ErrTokenClaimsAreInvalid    = errors.New("token claims are invalid")
	ErrTokenCreationFailed      = errors.New("token creation failed")
	ErrTokenSignKeyIsNotDefined = errors.New("token sign key is not defined")

	ErrPasswordHashingFailed = errors.New("password hashing failed")

	ErrMovieNotFound    = errors.New("movie not found")
	ErrEmptySearchQuery = errors.New("search query is empty")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
