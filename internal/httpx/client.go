package httpx

import (
	"time"

	"resty.dev/v3"
)

// NewClient builds the shared HTTP client used for registry, chart repository
// and notification calls. Transient failures (connection errors, 5xx) are
// retried with exponential backoff up to three times.
func NewClient() *resty.Client {
	return resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryConditions(func(res *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return res.StatusCode() >= 500
		})
}
