// Package kodi talks to a Kodi instance: JSON-RPC over HTTP for library reads
// and writes, GUI notifications and player state, and the raw TCP JSON-RPC
// port for push notifications.
package kodi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
)

const (
	jsonRPCVersion = "2.0"
	rpcPath        = "/jsonrpc"
	contentType    = "application/json"
	maxErrorBody   = 512
)

// RPCError is a JSON-RPC error object returned by Kodi.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Method  string `json:"-"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("kodi %s: %s (code %d)", e.Method, e.Message, e.Code)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      int64  `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// Client is a Kodi JSON-RPC client.
type Client struct {
	endpoint   string
	username   string
	password   string
	httpClient *http.Client
	nextID     atomic.Int64
}

// Options configures a Client.
type Options struct {
	URL        string
	Username   string
	Password   string
	Timeout    time.Duration
	MaxRetries int
}

// NewClient creates a client for the Kodi web server at opts.URL.
func NewClient(opts Options) *Client {
	transport := NewRetryableTransport(logger.NewRoundTripper(nil), opts.MaxRetries)
	return &Client{
		endpoint: strings.TrimRight(opts.URL, "/") + rpcPath,
		username: opts.Username,
		password: opts.Password,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
	}
}

// Call invokes method and decodes its result into result when non-nil.
func (c *Client) Call(ctx context.Context, method string, params, result any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: jsonRPCVersion,
		Method:  method,
		Params:  params,
		ID:      c.nextID.Add(1),
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", contentType)
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("kodi %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("kodi %s: unexpected status %s: %s", method, resp.Status, bytes.TrimSpace(snippet))
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if rpcResp.Error != nil {
		rpcResp.Error.Method = method
		return rpcResp.Error
	}
	if result == nil || len(rpcResp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

// Ping checks that Kodi answers JSON-RPC.
func (c *Client) Ping(ctx context.Context) error {
	var pong string
	if err := c.Call(ctx, "JSONRPC.Ping", nil, &pong); err != nil {
		return err
	}
	if pong != "pong" {
		return fmt.Errorf("kodi ping: unexpected reply %q", pong)
	}
	return nil
}
