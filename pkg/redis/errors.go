package redis

import "errors"

var (
	// ErrFailedToParseConnString is returned for a malformed REDIS_URL.
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")

	// ErrNotReady is returned when the server does not answer a ping within
	// the configured attempts.
	ErrNotReady = errors.New("redis server is not ready")

	// ErrHealthcheckFailed is returned by the healthcheck closure.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
