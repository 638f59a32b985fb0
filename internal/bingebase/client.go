// Package bingebase is the client for the Bingebase watch-history API and its
// device authorization flow.
package bingebase

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

	"golang.org/x/oauth2"

	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
)

const (
	apiPrefix      = "/api/v1"
	importPath     = "/kodi/import"
	exportPath     = "/kodi/export"
	webhookPath    = "/webhooks/kodi/"
	userAgent      = "Kodi/script.bingebase"
	contentType    = "application/json"
	DefaultTimeout = 30 * time.Second
)

// APIBaseURL returns the API root for a site URL such as https://bingebase.com.
func APIBaseURL(siteURL string) string {
	return strings.TrimRight(siteURL, "/") + apiPrefix
}

// WebhookURL returns the scrobble webhook bound to token.
func WebhookURL(siteURL, token string) string {
	return strings.TrimRight(siteURL, "/") + webhookPath + token
}

// Client calls the Bingebase API. It never retries; a failed call fails the
// phase that made it and the next pass tries again.
type Client struct {
	apiURL  string
	authed  *http.Client
	webhook *http.Client
}

// NewClient returns a client for siteURL that authenticates with token.
func NewClient(siteURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var transport http.RoundTripper = logger.NewRoundTripper(nil)
	if token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   transport,
		}
	}

	return &Client{
		apiURL: APIBaseURL(siteURL),
		authed: &http.Client{Timeout: timeout, Transport: transport},
		// Webhook URLs embed the token, so they bypass request logging.
		webhook: &http.Client{Timeout: timeout},
	}
}

// ImportHistory uploads watched records in one call. The ack is nil when the
// server answers with an empty body.
func (c *Client) ImportHistory(ctx context.Context, movies []MovieRecord, episodes []EpisodeRecord) (ImportAck, error) {
	if movies == nil {
		movies = []MovieRecord{}
	}
	if episodes == nil {
		episodes = []EpisodeRecord{}
	}

	var ack ImportAck
	_, err := doJSON(ctx, c.authed, "import", http.MethodPost, c.apiURL+importPath,
		importRequest{Movies: movies, Episodes: episodes}, &ack)
	if err != nil {
		return nil, err
	}
	return ack, nil
}

// ExportHistory fetches history recorded after since, or all of it when since
// is empty. A nil Export means the server had nothing to say.
func (c *Client) ExportHistory(ctx context.Context, since string) (*Export, error) {
	endpoint := c.apiURL + exportPath
	if since != "" {
		endpoint += "?" + url.Values{"since": {since}}.Encode()
	}

	var export Export
	ok, err := doJSON(ctx, c.authed, "export", http.MethodGet, endpoint, nil, &export)
	if err != nil || !ok {
		return nil, err
	}
	return &export, nil
}

// Scrobble posts a playback event to the user's webhook. An empty webhook
// URL means the account is not connected and nothing is sent.
func (c *Client) Scrobble(ctx context.Context, webhookURL string, payload any) error {
	if webhookURL == "" {
		return nil
	}
	_, err := doJSON(ctx, c.webhook, "scrobble", http.MethodPost, webhookURL, payload, nil)
	return err
}

// doJSON sends one request. It reports false when the response body is empty.
func doJSON(ctx context.Context, client *http.Client, op, method, endpoint string, payload, out any) (bool, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return false, fmt.Errorf("encode %s request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return false, fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		// url.Error repeats the endpoint, which may carry a webhook token.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return false, &NetworkError{Op: op, URL: redactURL(endpoint), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, &NetworkError{Op: op, URL: redactURL(endpoint), Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &HTTPError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return false, nil
	}
	if out == nil {
		return true, nil
	}

	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return false, fmt.Errorf("decode %s response: %w", op, err)
	}
	return true, nil
}

// redactURL hides webhook tokens in error messages.
func redactURL(endpoint string) string {
	if i := strings.Index(endpoint, webhookPath); i >= 0 {
		return endpoint[:i+len(webhookPath)] + "***"
	}
	return endpoint
}
