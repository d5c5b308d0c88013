// Package rpc implements a minimal JSON-RPC 2.0 client for a
// Shardeum/Ethereum node endpoint. Every call is a single HTTP POST;
// there is no retry, batching, or connection management beyond what
// net/http provides.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the public Shardeum testnet JSON-RPC host used when
// no endpoint is configured.
const DefaultEndpoint = "https://api-testnet.shardeum.org"

// Error is a JSON-RPC error object returned by the node.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// TransportError wraps a failure to deliver a request or decode its
// response: connection errors, timeouts, non-2xx statuses, bad JSON.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error (%s): %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

// Client issues JSON-RPC calls against a single node endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	log      *logrus.Entry
}

// NewClient builds a client for the given endpoint. An empty endpoint
// falls back to DefaultEndpoint; a zero timeout falls back to 30s.
func NewClient(endpoint string, timeout time.Duration, log *logrus.Entry) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		log:      log,
	}
}

// Endpoint returns the configured node URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Call sends one JSON-RPC 2.0 request and returns the raw result field.
// The id is fixed at 1; requests are never batched. A remote error object
// is returned as *Error, anything below that as *TransportError.
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(request{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return nil, &TransportError{Op: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.log != nil {
		c.log.WithField("method", method).Debug("rpc call")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "post", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Op: "post", Err: fmt.Errorf("unexpected status: %d", resp.StatusCode)}
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &TransportError{Op: "decode", Err: err}
	}
	if out.Error != nil {
		if c.log != nil {
			c.log.WithField("method", method).WithField("code", out.Error.Code).Warn("rpc error response")
		}
		return nil, out.Error
	}
	if out.Result == nil {
		out.Result = json.RawMessage("null")
	}
	return out.Result, nil
}
