package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL with the given request
// timeout. Idempotent requests are retried retries times on transport
// errors and 5xx responses.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000", 10*time.Second, 2)
//	resp, err := client.R().Get("/vault/uid")
func NewHTTPClient(baseURL string, timeout time.Duration, retries int) *HTTPClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if retries > 0 {
		c.SetRetryCount(retries).
			SetRetryWaitTime(100 * time.Millisecond).
			SetRetryMaxWaitTime(time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if r == nil || r.Request == nil {
					return err != nil
				}
				switch r.Request.Method {
				case "GET", "PUT", "DELETE":
					return err != nil || r.StatusCode() >= 500
				}
				return false
			})
	}

	return &HTTPClient{Client: c}
}
