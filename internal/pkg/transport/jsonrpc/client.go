// Package jsonrpc is a minimal JSON-RPC 2.0 client over HTTP with retries.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	transporthttp "github.com/gabapcia/ledgermirror/internal/pkg/transport/http"
)

var (
	// ErrProviderReturnedError indicates the server answered with a JSON-RPC error object.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates the server answered with a non-2xx HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

type request struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *rpcError       `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err converts the JSON-RPC error object, if any, into a Go error wrapping
// ErrProviderReturnedError.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client sends JSON-RPC requests.
type Client interface {
	// Fetch calls method with params and returns the raw result.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	endpoint   string
	httpClient *retryablehttp.Client
}

var _ Client = (*client)(nil)

// NewClient returns a Client posting to endpoint. The HTTP options tune the
// underlying retrying transport.
func NewClient(endpoint string, opts ...transporthttp.Option) *client {
	return &client{
		endpoint:   endpoint,
		httpClient: transporthttp.NewClient(opts...),
	}
}

func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(request{
		JsonRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// Call fetches method and decodes its result into T.
func Call[T any](ctx context.Context, c Client, method string, params ...any) (T, error) {
	var result T

	raw, err := c.Fetch(ctx, method, params...)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("decode %s result: %w", method, err)
	}

	return result, nil
}
