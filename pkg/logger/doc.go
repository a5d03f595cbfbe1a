// Package logger builds slog loggers with per-environment defaults and
// context extractors that stamp request-scoped values (tenant code, request
// id) onto every record.
package logger
