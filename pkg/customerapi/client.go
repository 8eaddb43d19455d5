package customerapi

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
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrymomot/customerdesk/pkg/customer"
	"github.com/dmitrymomot/customerdesk/pkg/requestid"
	"github.com/dmitrymomot/customerdesk/pkg/sanitizer"
)

const (
	defaultTimeout = 10 * time.Second
	defaultBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 64 << 10
	// maxDetailLength bounds the detail kept from an error response.
	maxDetailLength = 500
)

// Client talks to the Customer REST API. It implements customer.Client.
type Client struct {
	baseURL string
	http    *http.Client
	retries uint64
	backoff time.Duration
}

var _ customer.Client = (*Client)(nil)

// New creates a Client for the API rooted at baseURL, for example
// "https://crm.example.com/api". Outgoing requests carry the request id
// found in the call context.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL: strings.TrimSuffix(u.String(), "/"),
		http: &http.Client{
			Transport: requestid.Transport(http.DefaultTransport),
			Timeout:   defaultTimeout,
		},
		backoff: defaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// List returns one page of customers.
func (c *Client) List(ctx context.Context, params customer.ListParams) (*customer.Page, error) {
	var page customer.Page
	if err := c.read(ctx, "/customers/"+encodeListParams(params), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns the customer with the given id.
func (c *Client) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var out customer.Customer
	if err := c.read(ctx, customerPath(id, ""), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a customer.
func (c *Client) Create(ctx context.Context, fields customer.FormFields) (*customer.Customer, error) {
	var out customer.Customer
	if err := c.do(ctx, http.MethodPost, "/customers/", fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the customer with the given id.
func (c *Client) Update(ctx context.Context, id int64, fields customer.FormFields) (*customer.Customer, error) {
	var out customer.Customer
	if err := c.do(ctx, http.MethodPut, customerPath(id, ""), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the customer with the given id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, customerPath(id, ""), nil, nil)
}

// Stats returns aggregate counts.
func (c *Client) Stats(ctx context.Context) (*customer.Stats, error) {
	var out customer.Stats
	if err := c.read(ctx, "/customers/stats/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Activate marks the customer as active.
func (c *Client) Activate(ctx context.Context, id int64) (*customer.Customer, error) {
	return c.toggle(ctx, id, "activate")
}

// Deactivate marks the customer as inactive.
func (c *Client) Deactivate(ctx context.Context, id int64) (*customer.Customer, error) {
	return c.toggle(ctx, id, "deactivate")
}

// Ping checks that the API answers. It matches the httpserver.Check signature.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/customers/stats/", nil, nil)
}

func (c *Client) toggle(ctx context.Context, id int64, action string) (*customer.Customer, error) {
	var out struct {
		Customer customer.Customer `json:"customer"`
	}
	if err := c.do(ctx, http.MethodPost, customerPath(id, action), nil, &out); err != nil {
		return nil, err
	}
	return &out.Customer, nil
}

// read performs a GET, retrying transport errors, 429 and 5xx answers with
// exponential backoff.
func (c *Client) read(ctx context.Context, path string, out any) error {
	b := retry.WithMaxRetries(c.retries, retry.WithCappedDuration(maxBackoff, retry.NewExponential(c.backoff)))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, nil, out)
		if isRetryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrRequestFailed, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrInvalidResponse, method, path, err)
	}
	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	return errors.Is(err, ErrRequestFailed)
}

// decodeError builds an APIError from an error response. Only a string
// "detail" key becomes Detail. Per-field lists are read top-level or under
// "field_errors". Everything else is reduced to plain text for Error().
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))

	body := string(raw)
	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		decodeJSONError(raw, apiErr)
	case mediaType == "text/html":
		body = sanitizer.StripTags(body)
	}

	apiErr.Detail = cleanText(apiErr.Detail)
	apiErr.body = cleanText(body)
	return apiErr
}

func cleanText(s string) string {
	return sanitizer.MaxLength(sanitizer.CollapseWhitespace(sanitizer.DropInvalidUTF8(s)), maxDetailLength)
}

func decodeJSONError(raw []byte, apiErr *APIError) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return
	}

	var detail string
	if v, ok := body["detail"]; ok && json.Unmarshal(v, &detail) == nil {
		apiErr.Detail = detail
	}

	fields := body
	if nested, ok := body["field_errors"]; ok {
		fields = nil
		_ = json.Unmarshal(nested, &fields)
	}

	for key, v := range fields {
		switch key {
		case "detail", "message", "error", "field_errors":
			continue
		}
		if messages := decodeMessages(v); len(messages) > 0 {
			if apiErr.FieldErrors == nil {
				apiErr.FieldErrors = make(map[string][]string)
			}
			apiErr.FieldErrors[key] = messages
		}
	}
}

func decodeMessages(v json.RawMessage) []string {
	var list []string
	if json.Unmarshal(v, &list) == nil {
		return list
	}
	var s string
	if json.Unmarshal(v, &s) == nil && s != "" {
		return []string{s}
	}
	return nil
}

func customerPath(id int64, action string) string {
	p := "/customers/" + strconv.FormatInt(id, 10) + "/"
	if action != "" {
		p += action + "/"
	}
	return p
}

func encodeListParams(p customer.ListParams) string {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.IsActive != nil {
		q.Set("is_active", strconv.FormatBool(*p.IsActive))
	}
	if p.Ordering != "" {
		q.Set("ordering", p.Ordering)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
