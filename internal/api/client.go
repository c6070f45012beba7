// Package api is the client for the stock-analysis backend. Operations are grouped
// by resource family: Stocks (companies, analysis, sectors), Valuations and Stories.
//
// Every call issues a fresh request; nothing is cached, deduplicated or retried.
// Failures are logged with the operation name and returned unchanged.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/epeers/stocklens/internal/models"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "http://localhost:8888/api/v1"
	DefaultTimeout = 30 * time.Second
)

// maxErrorBody bounds how much of a failed response is read looking for a message
const maxErrorBody = 64 << 10

// Client is an HTTP client for the stock-analysis API
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate

	Stocks     *StockService
	Valuations *ValuationService
	Stories    *StoryService
}

type service struct {
	client *Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the transport timeout; zero disables it
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new API client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		validate: validator.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Stocks = &StockService{client: c}
	c.Valuations = &ValuationService{client: c}
	c.Stories = &StoryService{client: c}
	return c
}

// BaseURL returns the URL every request path is appended to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// tickerPath builds "/<resource>/<TICKER>[/<rest>...]"; the ticker is uppercased
// and every segment is path-escaped.
func tickerPath(resource, ticker string, rest ...string) string {
	var sb strings.Builder
	sb.WriteString("/")
	sb.WriteString(resource)
	sb.WriteString("/")
	sb.WriteString(url.PathEscape(strings.ToUpper(ticker)))
	for _, seg := range rest {
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(seg))
	}
	return sb.String()
}

// do performs one request. body, when non-nil, is sent as JSON. result, when
// non-nil, receives the decoded and validated response body; otherwise the body
// is discarded.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, result any) (err error) {
	defer TrackTime(op, time.Now())
	defer func() {
		if err != nil {
			log.WithFields(log.Fields{
				"op":     op,
				"method": method,
				"path":   path,
			}).Errorf("Error %s: %v", op, err)
		}
	}()

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Op: op, Method: method, Path: path, Err: fmt.Errorf("failed to encode request body: %w", err)}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return &RequestError{Op: op, Method: method, Path: path, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Op: op, Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(op, method, path, resp)
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &DecodeError{Op: op, Method: method, Path: path, Err: err}
	}
	if err := c.check(result); err != nil {
		return &DecodeError{Op: op, Method: method, Path: path, Err: err}
	}
	return nil
}

func newStatusError(op, method, path string, resp *http.Response) *RequestError {
	status := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if status == "" {
		status = http.StatusText(resp.StatusCode)
	}

	reqErr := &RequestError{
		Op:         op,
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Status:     status,
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var errResp models.ErrorResponse
	if json.Unmarshal(raw, &errResp) == nil {
		reqErr.Message = errResp.Message
		if reqErr.Message == "" {
			reqErr.Message = errResp.Error
		}
	}
	return reqErr
}

// check validates decoded structs (and slices of structs) against their
// `validate` tags so a body with the wrong shape fails here instead of later.
func (c *Client) check(result any) error {
	v := reflect.ValueOf(result)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return c.validate.Struct(v.Addr().Interface())
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if err := c.check(v.Index(i).Addr().Interface()); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	}
	return nil
}
