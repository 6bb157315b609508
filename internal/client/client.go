// Package client is a Bot API client for bot logic driven by the mock
// server. It speaks the same protocol as the real platform, so pointing
// BaseURL at api.telegram.org works too.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.telegram.org"

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	// Limiter spaces out calls. Nil means no limit.
	Limiter *rate.Limiter
	Logger  *zap.Logger
}

func (o *Options) setDefaults() {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.HTTPClient == nil {
		o.HTTPClient = http.DefaultClient
	}
	if o.Limiter == nil {
		o.Limiter = rate.NewLimiter(rate.Inf, 0)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

type Client struct {
	token   string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

func New(token string, opts Options) *Client {
	opts.setDefaults()
	return &Client{
		token:   token,
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		http:    opts.HTTPClient,
		limiter: opts.Limiter,
		logger:  opts.Logger,
	}
}

// Error is a failure envelope returned by the server.
type Error struct {
	Method      string
	Code        int
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %d %s", e.Method, e.Code, e.Description)
}

// AsError reports whether err carries a server error.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

type response struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	ErrorCode   int             `json:"error_code"`
	Description string          `json:"description"`
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
}

// Call invokes method with params encoded as JSON and decodes the result
// into result, which may be nil.
func (c *Client) Call(ctx context.Context, method string, params, result any) error {
	body, err := json.Marshal(params)
	if err != nil {
		return errors.Wrapf(err, "encode %s", method)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(ctx, method, req, result)
}

// upload invokes method as multipart/form-data. Fields of params become
// form values and files become parts named after their key.
func (c *Client) upload(ctx context.Context, method string, params any, files map[string]upload, result any) error {
	fields, err := fieldsOf(params)
	if err != nil {
		return errors.Wrapf(err, "encode %s", method)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, raw := range fields {
		if err := w.WriteField(k, formValue(raw)); err != nil {
			return errors.Wrap(err, "write field")
		}
	}
	for name, f := range files {
		part, err := w.CreateFormFile(name, f.name)
		if err != nil {
			return errors.Wrap(err, "create part")
		}
		if _, err := part.Write(f.data); err != nil {
			return errors.Wrap(err, "write part")
		}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "close multipart")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), &body)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(ctx, method, req, result)
}

func (c *Client) do(ctx context.Context, method string, req *http.Request, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "rate limit")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "call %s", method)
	}
	defer resp.Body.Close()

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return errors.Wrap(err, "decode response")
	}
	if !r.OK {
		c.logger.Debug("call failed",
			zap.String("method", method),
			zap.Int("code", r.ErrorCode),
			zap.String("description", r.Description),
		)
		return &Error{Method: method, Code: r.ErrorCode, Description: r.Description}
	}
	c.logger.Debug("call", zap.String("method", method))

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(r.Result, result); err != nil {
		return errors.Wrapf(err, "decode %s result", method)
	}
	return nil
}

// DownloadFile fetches the content of a file returned by GetFile.
func (c *Client) DownloadFile(ctx context.Context, filePath string) ([]byte, error) {
	u := fmt.Sprintf("%s/file/bot%s/%s", c.baseURL, c.token, filePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limit")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "download file")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var r response
		_ = json.NewDecoder(resp.Body).Decode(&r)
		return nil, &Error{Method: "file", Code: resp.StatusCode, Description: r.Description}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}
	return data, nil
}

// fieldsOf encodes params as a JSON object and returns its fields.
func fieldsOf(params any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// formValue renders one JSON field as a form value: strings unquoted,
// everything else as JSON text.
func formValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
