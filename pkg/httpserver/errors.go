package httpserver

import "errors"

var (
	// ErrStart wraps listener startup failures.
	ErrStart = errors.New("failed to start http server")

	// ErrShutdown wraps graceful shutdown failures.
	ErrShutdown = errors.New("failed to shut down http server")
)
