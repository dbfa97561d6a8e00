package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

// maxBodySize caps how much of a reply is read.
const maxBodySize = 4 << 20

// Client performs form-encoded POST calls against the notes backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, log)
}

// NewClientWithHTTP lets callers supply their own transport.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, log logging.Logger) *Client {
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log.With("component", "api"),
	}
}

// Post sends form to <base>/<endpoint>, with a bearer token when token is
// non-empty. Exactly one request is made.
func (c *Client) Post(ctx context.Context, endpoint string, form url.Values, token string) *Response {
	started := time.Now()

	var body io.Reader
	if encoded := form.Encode(); encoded != "" {
		body = strings.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, body)
	if err != nil {
		c.log.Warn(ctx, "request build failed", "endpoint", endpoint, "err", err)
		return NetworkFailure()
	}
	req.Header.Set("Content-Type", common.FormContentType)
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "endpoint", endpoint, "err", err)
		return NetworkFailure()
	}
	defer resp.Body.Close()

	var data Payload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&data); err != nil || data == nil {
		c.log.Warn(ctx, "undecodable response", "endpoint", endpoint, "status", resp.StatusCode, "err", err)
		return NetworkFailure()
	}

	c.log.Debug(ctx, "request done",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"result", data.Status(),
		"duration", time.Since(started),
	)

	return &Response{
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
		Data:       data,
	}
}
