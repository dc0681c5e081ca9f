// Package smoke is a small HTTP client for exercising a running pdf-parser
// instance end to end.
package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/MalithGihan/pdfparser-service/internal/validate"
	"github.com/MalithGihan/pdfparser-service/pkg/types"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, strings.TrimSpace(e.Body))
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Health(ctx context.Context) (types.HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return types.HealthStatus{}, err
	}
	body, err := c.do(req)
	if err != nil {
		return types.HealthStatus{}, err
	}
	var out types.HealthStatus
	if err := json.Unmarshal(body, &out); err != nil {
		return types.HealthStatus{}, fmt.Errorf("decode health: %w", err)
	}
	return out, nil
}

// Parse uploads r as the "file" field under filename and checks the reply
// against the ParseResult schema before decoding it.
func (c *Client) Parse(ctx context.Context, filename string, r io.Reader) (types.ParseResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(h)
	if err != nil {
		return types.ParseResult{}, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return types.ParseResult{}, fmt.Errorf("read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return types.ParseResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/parse", &buf)
	if err != nil {
		return types.ParseResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return types.ParseResult{}, err
	}
	if err := validate.ParseResult(body); err != nil {
		return types.ParseResult{}, fmt.Errorf("response does not match schema: %w", err)
	}
	var out types.ParseResult
	if err := json.Unmarshal(body, &out); err != nil {
		return types.ParseResult{}, fmt.Errorf("decode parse result: %w", err)
	}
	return out, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
