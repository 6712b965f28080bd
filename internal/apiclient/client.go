// Package apiclient talks to the external wholesale API. Every response must use the
// {success, data, message} envelope; anything else is rejected with ErrMalformedResponse.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-wholesale-console/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrMalformedResponse means the API answered with something other than the envelope.
	ErrMalformedResponse = errors.New("unexpected response from API")
	// ErrUnreachable wraps transport failures (DNS, refused connection, timeout).
	ErrUnreachable = errors.New("API unreachable")
)

// APIError is a failure reported by the API itself. Message is shown to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// envelope is the only response shape accepted from the API.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client is the HTTP client of the external API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a client for baseURL (e.g. http://api:5000).
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "api_client").Logger(),
	}
}

// Login exchanges credentials for an API token and the user's identity.
// POST /api/v1/user/login
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error) {
	var out model.LoginResult
	if err := c.do(ctx, "login", http.MethodPost, "/api/v1/user/login", "", req, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("%w: login returned no token", ErrMalformedResponse)
	}
	return &out, nil
}

// ListStores GET /api/v1/store
func (c *Client) ListStores(ctx context.Context, token string) ([]model.Store, error) {
	var out []model.Store
	if err := c.do(ctx, "list_stores", http.MethodGet, "/api/v1/store", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStore POST /api/v1/store/create-store
func (c *Client) CreateStore(ctx context.Context, token string, req model.CreateStoreRequest) (*model.Store, error) {
	var out model.Store
	if err := c.do(ctx, "create_store", http.MethodPost, "/api/v1/store/create-store", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStore sends the full store. PUT /api/v1/store/{id}
func (c *Client) UpdateStore(ctx context.Context, token string, store model.Store) (*model.Store, error) {
	var out model.Store
	path := "/api/v1/store/" + url.PathEscape(store.ID)
	if err := c.do(ctx, "update_store", http.MethodPut, path, token, store, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers GET /api/v1/user
func (c *Client) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	var out []model.User
	if err := c.do(ctx, "list_users", http.MethodGet, "/api/v1/user", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterUser POST /api/v1/user/register
func (c *Client) RegisterUser(ctx context.Context, token string, req model.RegisterUserPayload) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, "register_user", http.MethodPost, "/api/v1/user/register", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitContact forwards a public contact message. POST /api/v1/contact
func (c *Client) SubmitContact(ctx context.Context, msg model.ContactMessage) error {
	return c.do(ctx, "contact", http.MethodPost, "/api/v1/contact", "", msg, nil)
}

// do performs one call. A nil out means the data field is ignored.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) (err error) {
	start := time.Now()
	defer func() { observe(op, start, err) }()

	var reader io.Reader = http.NoBody
	if body != nil {
		buf, merr := json.Marshal(body)
		if merr != nil {
			return fmt.Errorf("encode %s request: %w", op, merr)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("op", op).Str("request_id", requestID).Msg("api call failed")
		return fmt.Errorf("%w: %s: %v", ErrUnreachable, op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%w: %s: read body: %v", ErrUnreachable, op, err)
	}

	c.logger.Debug().
		Str("op", op).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("api call")

	return decode(resp.StatusCode, raw, out)
}

// decode applies the envelope rules to a response.
func decode(status int, raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Success == nil {
		if status >= http.StatusBadRequest {
			return &APIError{Status: status, Message: fallbackMessage(status, raw)}
		}
		return ErrMalformedResponse
	}

	if !*env.Success || status >= http.StatusBadRequest {
		if status < http.StatusBadRequest {
			status = http.StatusUnprocessableEntity
		}
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &APIError{Status: status, Message: msg}
	}

	if out == nil {
		return nil
	}
	if string(env.Data) == "null" && emptyList(out) {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: missing data", ErrMalformedResponse)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// emptyList resets list outputs to an empty list. A null list is how some APIs
// encode "no rows"; single-object outputs are not lists and stay malformed.
func emptyList(out any) bool {
	switch v := out.(type) {
	case *[]model.Store:
		*v = []model.Store{}
	case *[]model.User:
		*v = []model.User{}
	default:
		return false
	}
	return true
}

// fallbackMessage is used when an error response is not an envelope.
func fallbackMessage(status int, raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if text != "" && len(text) <= 300 && !strings.HasPrefix(text, "<") {
		return text
	}
	return http.StatusText(status)
}
