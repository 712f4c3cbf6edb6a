// Package trello provides a client for the Trello REST API.
//
// The client wraps the board, list, card, checklist, and label endpoints
// under https://api.trello.com/1 and normalizes transport, authentication,
// and protocol failures into a small set of sentinel errors that callers
// can match with errors.Is.
//
// Every request carries the API key and token as query parameters. The
// client holds no state beyond its configuration: each call is a single
// synchronous round-trip with no retries and no caching.
package trello
