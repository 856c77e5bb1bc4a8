package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://www.googleapis.com", 30*time.Second)
//	resp, err := client.R().Get("/drive/v3/files")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance rooted at
// baseURL. A non-positive timeout leaves the transport default in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithLogging logs every completed request at debug level and every
// transport failure at warn level. Request headers are never logged, so the
// bearer token stays out of the log file.
func (c *HTTPClient) WithLogging(log *logger.Logger) *HTTPClient {
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("uri", resp.Request.URL).
			Str("method", resp.Request.Method).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int("size", len(resp.Body())).
			Send()
		return nil
	})

	c.OnError(func(req *resty.Request, err error) {
		log.Warn().
			Err(err).
			Str("uri", req.URL).
			Str("method", req.Method).
			Msg("request failed")
	})

	return c
}
