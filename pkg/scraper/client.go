package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/vvraju56/web-scraper/pkg/models"
)

// DefaultBaseURL is where the scrape service listens when run locally.
const DefaultBaseURL = "http://localhost:5000"

// DefaultTimeout bounds a whole scrape round trip. Scraping many slow
// pages server-side can legitimately take minutes.
const DefaultTimeout = 120 * time.Second

// Client talks to the scrape service over HTTP. It holds no result
// state; every response is decoded and handed back to the caller.
type Client struct {
	baseURL    string
	version    models.APIVersion
	httpClient *http.Client
}

// New creates a client for the service at baseURL speaking the given
// contract version. A zero timeout disables the client-side deadline.
func New(baseURL string, version models.APIVersion, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if version == "" {
		version = models.APIv2
	}

	return &Client{
		baseURL: baseURL,
		version: version,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the normalized service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Version returns the contract version the client speaks.
func (c *Client) Version() models.APIVersion {
	return c.version
}

// buildRequest creates an HTTP request with proper headers
func (c *Client) buildRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	return req, nil
}

// doRequest performs an HTTP request, surfaces the service's error
// envelope on non-2xx statuses and decodes the body into result.
func (c *Client) doRequest(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newServerError(resp.StatusCode, errorMessageFromBody(body, resp.Status))
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return newInvalidResponseError("failed to parse response", err)
		}
	}

	return nil
}

// doJSONRequest performs a JSON request (POST, PUT, PATCH)
func (c *Client) doJSONRequest(ctx context.Context, method, path string, payload, result interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := c.buildRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	return c.doRequest(req, result)
}

// doGetRequest performs a GET request
func (c *Client) doGetRequest(ctx context.Context, path string, result interface{}) error {
	req, err := c.buildRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	return c.doRequest(req, result)
}

// errorMessageFromBody pulls the message out of the service's
// {"error": "..."} envelope, falling back to the raw body or status.
func errorMessageFromBody(body []byte, status string) string {
	var apiErr models.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return apiErr.Error
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return status
}

func classifyTransportError(err error) *ClientError {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return newTimeoutError(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return newTimeoutError(err)
	}
	return newNetworkError(err)
}

// Submit sends one scrape request speaking the typed contract and
// returns the decoded response. The caller is responsible for gating
// concurrent submissions; the client fires exactly one POST per call.
func (c *Client) Submit(ctx context.Context, urls []string) (*models.ScrapeResponse, error) {
	if len(urls) == 0 {
		return nil, newValidationError("at least one URL is required")
	}

	var result models.ScrapeResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, "/scrape", models.ScrapeRequest{URLs: urls}, &result); err != nil {
		return nil, err
	}

	if !result.Success {
		return nil, newServerError(http.StatusOK, "The scrape service reported a failure")
	}

	return &result, nil
}

// SubmitLegacy sends one scrape request speaking the legacy contract.
func (c *Client) SubmitLegacy(ctx context.Context, urls []string) (*models.LegacyScrapeResponse, error) {
	if len(urls) == 0 {
		return nil, newValidationError("at least one URL is required")
	}

	var result models.LegacyScrapeResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, "/scrape", models.ScrapeRequest{URLs: urls}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// SubmitSet scrapes urls using the configured contract version and
// returns the rows ready for display.
func (c *Client) SubmitSet(ctx context.Context, urls []string) (*models.ResultSet, error) {
	if c.version == models.APIv1 {
		resp, err := c.SubmitLegacy(ctx, urls)
		if err != nil {
			return nil, err
		}
		return models.NewLegacyResultSet(resp), nil
	}

	resp, err := c.Submit(ctx, urls)
	if err != nil {
		return nil, err
	}
	return models.NewResultSet(resp), nil
}

// Health verifies the service is available
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var result models.HealthResponse
	if err := c.doGetRequest(ctx, "/health", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// WaitHealthy polls /health with exponential backoff until the service
// answers, maxWait elapses or ctx is cancelled. Errors a retry cannot
// fix stop the wait immediately.
func (c *Client) WaitHealthy(ctx context.Context, maxWait time.Duration) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = maxWait

	operation := func() error {
		_, err := c.Health(ctx)
		if err == nil {
			return nil
		}
		var clientErr *ClientError
		if errors.As(err, &clientErr) && !clientErr.IsRetryable() {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(operation, backoff.WithContext(bo, ctx))
}

// downloadPath maps the format onto the route for the contract version.
// The typed service generates a single Excel workbook; the legacy one
// exposes a route per format.
func (c *Client) downloadPath(format models.DownloadFormat) (string, error) {
	if c.version == models.APIv1 {
		return "/download/" + string(format), nil
	}
	if format != models.FormatExcel {
		return "", newValidationError(fmt.Sprintf("the service only exports Excel; %s requires --api-version v1", format))
	}
	return "/download", nil
}

// Download fetches the export the service generated for the last scrape
// and writes it into dir, returning the path of the saved file. The file
// name comes from the Content-Disposition header when present.
func (c *Client) Download(ctx context.Context, format models.DownloadFormat, dir string) (string, error) {
	path, err := c.downloadPath(format)
	if err != nil {
		return "", err
	}

	req, err := c.buildRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", newServerError(resp.StatusCode, errorMessageFromBody(body, resp.Status))
	}

	name := attachmentName(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = fmt.Sprintf("scraped_data_%s%s", time.Now().Format("20060102_150405"), format.Ext())
	}

	dest := filepath.Join(dir, name)
	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", dest, err)
	}

	return dest, nil
}

// attachmentName extracts a safe file name from a Content-Disposition
// header, or returns empty when the header is missing or unusable.
func attachmentName(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	name := filepath.Base(params["filename"])
	if name == "." || name == "/" || name == "" {
		return ""
	}
	return name
}
