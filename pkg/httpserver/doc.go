// Package httpserver wraps net/http with graceful shutdown, termination
// signal handling and stop hooks for draining dependent resources.
package httpserver
