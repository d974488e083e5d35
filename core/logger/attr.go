package logger

import "log/slog"

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit nil checks.

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// HTTP
// ============================================================================

// Method creates an attribute for the HTTP method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for the request path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// ContentType creates an attribute for a Content-Type header value.
// Returns empty Attr for an empty value.
func ContentType(ct string) slog.Attr {
	if ct == "" {
		return slog.Attr{}
	}
	return slog.String("content_type", ct)
}

// ============================================================================
// Decoding
// ============================================================================

// Field creates an attribute for the name of a multipart field.
// Returns empty Attr for an empty name.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Stage creates an attribute for the conversion stage that failed.
// Accepts any fmt.Stringer so part.Stage can be logged without an import cycle.
func Stage(stage interface{ String() string }) slog.Attr {
	if stage == nil {
		return slog.Attr{}
	}
	return slog.String("stage", stage.String())
}

// Record creates an attribute for a record type name.
func Record(name string) slog.Attr {
	return slog.String("record", name)
}

// Parts creates an attribute for the number of collected parts.
func Parts(n int) slog.Attr {
	return slog.Int("parts", n)
}

// ============================================================================
// Generic
// ============================================================================

// Component creates an attribute for the component name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// File creates an attribute for a file path.
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// Count creates a count attribute with a custom key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key creates a generic key-value attribute.
func Key(key string, value any) slog.Attr {
	return slog.Any(key, value)
}
