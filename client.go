package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// newRestClient builds the HTTP client shared by every upstream call.
// Requests are attempted once; there is no retry policy.
func newRestClient(userAgent string, timeout time.Duration, logger *slog.Logger) *resty.Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("request", "method", req.Method, "url", req.URL, "query", req.QueryParam.Encode())
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
			"bytes", len(resp.Body()),
		)
		return nil
	})

	return client
}

// getJSON performs a GET and decodes the JSON body into out.
// Transport failures become *NetworkError and non-2xx responses *HTTPError.
func getJSON(ctx context.Context, client *resty.Client, url string, params map[string]string, out any) error {
	resp, err := client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(url)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if !resp.IsSuccess() {
		return &HTTPError{StatusCode: resp.StatusCode(), URL: url}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", url, err)
	}

	return nil
}
