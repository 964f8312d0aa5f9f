package domain

import "errors"

var (
	// ErrUnknownPlatform is returned when a platform id is not in the catalog.
	// Platform ids come from the content type catalog, so this is a programmer error.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrRemoteGeneration wraps every failure of the remote generator.
	// It is always recovered by local generation.
	ErrRemoteGeneration = errors.New("remote generation failed")

	// ErrRemoteUnavailable is returned when no endpoint or credentials are configured.
	ErrRemoteUnavailable = errors.New("remote generation unavailable")

	// ErrMalformedResponse is returned when the remote body does not match the expected shape.
	ErrMalformedResponse = errors.New("malformed remote response")

	// ErrInvalidContent is returned when a share request has no usable content.
	ErrInvalidContent = errors.New("invalid content")

	// ErrRateLimited is returned when rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUnauthorized is returned when a bearer token is missing or wrong.
	ErrUnauthorized = errors.New("unauthorized")
)
