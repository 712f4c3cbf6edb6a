// Package logging provides structured logging utilities for the mcp-trello application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Credential masking for API keys and tokens
//   - URL sanitization so query-string credentials never reach logs
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "create_card")
//	logger.Info("creating card",
//	    logging.List(listID),
//	    logging.Board(boardID))
//
// Sanitize sensitive data before logging:
//
//	logger.Debug("trello request",
//	    logging.URL(requestURL))
//
// # Security Considerations
//
// Trello authenticates through query parameters, so every URL logged by
// this application must pass through SanitizeURL first. Tokens are only
// ever logged as a length indicator.
package logging
