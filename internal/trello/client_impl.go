package trello

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/giantswarm/mcp-trello/internal/logging"
)

// httpClient is the concrete Client backed by net/http.
type httpClient struct {
	key     string
	token   string
	baseURL string
	http    *http.Client
	logger  Logger
}

func newHTTPClient(key, token string, config *ClientConfig) *httpClient {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &httpClient{
		key:     key,
		token:   token,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  config.Logger,
	}
}

// do performs a single request against the Trello API and decodes the
// response into out when out is non-nil. The op and id feed error
// context; query carries operation parameters on top of the credential
// pair. An empty 2xx body with a non-nil out leaves out untouched and
// reports success.
func (c *httpClient) do(ctx context.Context, op, method, path, id string, query url.Values, out interface{}) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return &APIError{Op: op, ID: id, Kind: ErrValidation, Cause: err}
	}

	q := u.Query()
	q.Set("key", c.key)
	q.Set("token", c.token)
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return &APIError{Op: op, ID: id, Kind: ErrTransport, Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logf("trello request failed", op, id, u.String(), 0, start, err)
		return &APIError{Op: op, ID: id, Kind: ErrTransport, Cause: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		c.logf("trello response read failed", op, id, u.String(), resp.StatusCode, start, err)
		return &APIError{Op: op, ID: id, Status: resp.StatusCode, Kind: ErrTransport, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := kindForStatus(resp.StatusCode)
		c.logf("trello api error", op, id, u.String(), resp.StatusCode, start, kind)
		return &APIError{
			Op:     op,
			ID:     id,
			Status: resp.StatusCode,
			Kind:   kind,
			Cause:  errorFromBody(body),
		}
	}

	c.logf("trello request completed", op, id, u.String(), resp.StatusCode, start, nil)

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Op: op, ID: id, Status: resp.StatusCode, Kind: ErrProtocol, Cause: err}
	}
	return nil
}

// logf emits a debug line for a single request. The URL passes through
// the sanitizer so credential query parameters never reach logs.
func (c *httpClient) logf(msg, op, id, rawURL string, status int, start time.Time, err error) {
	if c.logger == nil {
		return
	}
	args := []interface{}{
		logging.KeyOperation, op,
		logging.KeyURL, logging.SanitizeURL(rawURL),
		logging.KeyDuration, time.Since(start).String(),
	}
	if id != "" {
		args = append(args, "id", id)
	}
	if status != 0 {
		args = append(args, logging.KeyStatus, status)
	}
	if err != nil {
		args = append(args, logging.KeyError, err.Error())
	}
	c.logger.Debug(msg, args...)
}

// errorFromBody extracts Trello's error message from a failed response.
// Trello sometimes returns plain text and sometimes {"message": "..."}.
func errorFromBody(body []byte) error {
	if len(body) == 0 {
		return nil
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return errors.New(payload.Message)
		}
		if payload.Error != "" {
			return errors.New(payload.Error)
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200]
	}
	return errors.New(text)
}

func errMissingCredentials(key, token string) error {
	switch {
	case key == "" && token == "":
		return fmt.Errorf("%s and %s must be set", EnvAPIKey, EnvAPIToken)
	case key == "":
		return fmt.Errorf("%s must be set", EnvAPIKey)
	default:
		return fmt.Errorf("%s must be set", EnvAPIToken)
	}
}

// sortListsByPos orders lists by position ascending, matching the board
// as rendered in the Trello UI.
func sortListsByPos(lists []List) {
	sort.SliceStable(lists, func(i, j int) bool { return lists[i].Pos < lists[j].Pos })
}

// sortCardsByPos orders cards by position ascending.
func sortCardsByPos(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].Pos < cards[j].Pos })
}
