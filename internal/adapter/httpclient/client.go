package httpclient

import (
	"net/http"
	"time"
)

// NewHTTPClient returns a client for upstream calls. A zero timeout means none.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}
