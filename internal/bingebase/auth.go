package bingebase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
	"github.com/bigspawn/kodi-bingebase-sync/internal/state"
)

const (
	deviceCodePath  = "/kodi/device/code"
	deviceTokenPath = "/kodi/device/token"
	activatePath    = "/activate"

	errExpiredToken = "expired_token"

	defaultDeviceCodeTTL = 10 * time.Minute
	defaultPollInterval  = 5 * time.Second
)

// DeviceCode is what the user needs to approve this device.
type DeviceCode struct {
	UserCode        string
	VerificationURL string
	Expiry          time.Time
}

type deviceCodeResponse struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURL string `json:"verification_url"`
	VerificationURI string `json:"verification_uri"`
	ExpiresIn       int    `json:"expires_in"`
	Interval        int    `json:"interval"`
}

type deviceTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Authorizer runs the Bingebase device authorization handshake.
type Authorizer struct {
	siteURL    string
	apiURL     string
	httpClient *http.Client
	// intervalUnit scales the server's poll interval, given in seconds.
	intervalUnit time.Duration
}

// NewAuthorizer returns an Authorizer for siteURL.
func NewAuthorizer(siteURL string, timeout time.Duration) *Authorizer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Authorizer{
		siteURL:      strings.TrimRight(siteURL, "/"),
		apiURL:       APIBaseURL(siteURL),
		httpClient:   &http.Client{Timeout: timeout, Transport: logger.NewRoundTripper(nil)},
		intervalUnit: time.Second,
	}
}

// Authorize requests a device code, hands it to prompt, and polls until the
// user approves, the code expires, or ctx is cancelled. Any poll answer other
// than an expired code counts as still pending.
func (a *Authorizer) Authorize(ctx context.Context, prompt func(DeviceCode)) (*oauth2.Token, error) {
	var code deviceCodeResponse
	ok, err := doJSON(ctx, a.httpClient, "device code", http.MethodPost, a.apiURL+deviceCodePath, nil, &code)
	if err != nil {
		return nil, fmt.Errorf("request device code: %w", err)
	}
	if !ok || code.DeviceCode == "" {
		return nil, errors.New("request device code: response carries no device code")
	}

	ttl := defaultDeviceCodeTTL
	if code.ExpiresIn > 0 {
		ttl = time.Duration(code.ExpiresIn) * time.Second
	}
	expiry := time.Now().Add(ttl)
	interval := defaultPollInterval
	if code.Interval > 0 {
		interval = time.Duration(code.Interval) * a.intervalUnit
	}
	verification := code.VerificationURL
	if verification == "" {
		verification = code.VerificationURI
	}
	if verification == "" {
		verification = a.siteURL + activatePath
	}

	prompt(DeviceCode{
		UserCode:        code.UserCode,
		VerificationURL: verification,
		Expiry:          expiry,
	})

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if time.Now().After(expiry) {
			return nil, ErrAuthorizationExpired
		}

		token, err := a.poll(ctx, code.DeviceCode)
		if err != nil {
			return nil, err
		}
		if token != nil {
			return token, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// poll asks once for the token. A nil token with a nil error means pending.
func (a *Authorizer) poll(ctx context.Context, deviceCode string) (*oauth2.Token, error) {
	var resp deviceTokenResponse
	_, err := doJSON(ctx, a.httpClient, "device token", http.MethodPost, a.apiURL+deviceTokenPath,
		map[string]string{"device_code": deviceCode}, &resp)
	if err != nil {
		if isExpired(err) {
			return nil, ErrAuthorizationExpired
		}
		logger.Debug(ctx, "Authorization pending: %v", err)
		return nil, nil
	}
	if resp.AccessToken == "" {
		return nil, nil
	}

	tokenType := resp.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return &oauth2.Token{AccessToken: resp.AccessToken, TokenType: tokenType}, nil
}

func isExpired(err error) bool {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadRequest {
		return false
	}
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal([]byte(httpErr.Body), &body) != nil {
		return false
	}
	return body.Error == errExpiredToken
}

// CredentialStore persists connection settings.
type CredentialStore interface {
	Update(values map[string]string) error
	Delete(keys ...string) error
}

// Connect stores token and the webhook bound to it, and clears the sync
// cursor so the first pass after connecting pulls the full history.
func Connect(store CredentialStore, siteURL, token string) error {
	if token == "" {
		return errors.New("empty access token")
	}
	return store.Update(map[string]string{
		state.KeyAccessToken: token,
		state.KeyWebhookURL:  WebhookURL(siteURL, token),
		state.KeyLastSync:    "",
	})
}

// Disconnect forgets the token and the webhook.
func Disconnect(store CredentialStore) error {
	return store.Delete(state.KeyAccessToken, state.KeyWebhookURL)
}
