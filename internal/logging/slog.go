package logging

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation = "operation"
	KeyTool      = "tool"
	KeyBoard     = "board_id"
	KeyList      = "list_id"
	KeyCard      = "card_id"
	KeyChecklist = "checklist_id"
	KeyLabel     = "label_id"
	KeyDuration  = "duration"
	KeyStatus    = "status"
	KeyError     = "error"
	KeyURL       = "url"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Query parameters that carry credentials and must never reach logs.
var sensitiveParams = []string{"key", "token"}

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithTool returns a logger with the tool attribute set.
func WithTool(logger *slog.Logger, tool string) *slog.Logger {
	return logger.With(slog.String(KeyTool, tool))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Board returns a slog attribute for a board identifier.
func Board(id string) slog.Attr {
	return slog.String(KeyBoard, id)
}

// List returns a slog attribute for a list identifier.
func List(id string) slog.Attr {
	return slog.String(KeyList, id)
}

// Card returns a slog attribute for a card identifier.
func Card(id string) slog.Attr {
	return slog.String(KeyCard, id)
}

// Checklist returns a slog attribute for a checklist identifier.
func Checklist(id string) slog.Attr {
	return slog.String(KeyChecklist, id)
}

// Label returns a slog attribute for a label identifier.
func Label(id string) slog.Attr {
	return slog.String(KeyLabel, id)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// URL returns a slog attribute for a request URL with credentials
// redacted.
func URL(raw string) slog.Attr {
	return slog.String(KeyURL, SanitizeURL(raw))
}

// SanitizeURL returns a version of raw safe for logging. Trello carries
// the API key and token as query parameters, so their values are
// replaced with a placeholder while the rest of the URL is preserved
// for debugging.
//
// Examples:
//   - "https://api.trello.com/1/cards?key=abc&token=def" ->
//     "https://api.trello.com/1/cards?key=REDACTED&token=REDACTED"
//   - "" -> "<empty>"
func SanitizeURL(raw string) string {
	if raw == "" {
		return "<empty>"
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "<unparseable-url>"
	}

	q := parsed.Query()
	changed := false
	for _, param := range sensitiveParams {
		if q.Has(param) {
			q.Set(param, "REDACTED")
			changed = true
		}
	}
	if changed {
		parsed.RawQuery = q.Encode()
	}
	return parsed.String()
}

// SanitizeToken returns a masked version of a credential for logging.
// It returns a length indicator without exposing any content, as even
// partial prefixes can aid attacks.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}

// ParseLevel maps a textual log level to its slog value. Unknown values
// fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
