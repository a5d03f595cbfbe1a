package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// TenantCode records the routing key under the key "tenant".
func TenantCode(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("tenant", code)
}

// Database records a physical database name under the key "database".
// Keep these attrs out of client-facing output; they are for operators only.
func Database(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("database", name)
}
