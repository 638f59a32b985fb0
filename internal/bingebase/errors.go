package bingebase

import (
	"errors"
	"fmt"
)

// ErrNotConnected means no access token is stored.
var ErrNotConnected = errors.New("not connected to Bingebase")

// ErrAuthorizationExpired means the device code expired before the user approved it.
var ErrAuthorizationExpired = errors.New("device authorization expired")

// HTTPError is a non-2xx answer from the Bingebase API.
type HTTPError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("bingebase %s: HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("bingebase %s: HTTP %d: %s", e.Op, e.StatusCode, e.Body)
}

// NetworkError is a transport failure or timeout talking to Bingebase.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("bingebase %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
