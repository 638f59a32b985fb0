package logger

import (
	"net/http"
	"time"
)

// roundTripper logs HTTP requests and responses when the request's logger is verbose.
type roundTripper struct {
	base http.RoundTripper
}

// NewRoundTripper wraps base (http.DefaultTransport when nil) with request logging.
func NewRoundTripper(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &roundTripper{base: base}
}

func (rt *roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	l := from(req.Context())
	if !l.Verbose() {
		return rt.base.RoundTrip(req)
	}

	l.DebugHTTP("%s %s", req.Method, redact(req))
	start := time.Now()

	resp, err := rt.base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		l.DebugHTTP("%s %s failed: %v (took %v)", req.Method, redact(req), err, elapsed)
		return nil, err
	}

	l.DebugHTTP("%s %s -> %d (took %v)", req.Method, redact(req), resp.StatusCode, elapsed)
	return resp, nil
}

// redact drops credentials and the query from the logged URL.
func redact(req *http.Request) string {
	u := *req.URL
	u.User = nil
	u.RawQuery = ""
	return u.String()
}
