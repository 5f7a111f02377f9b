package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrEmptyBaseURL = errors.New("parser: base URL is required")

// Client is the HTTP client for the syllabus parsing service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a parser client. A zero timeout means requests never time out.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// WithHTTPClient overrides the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Upload posts the file as multipart field "file" to POST /upload.
func (c *Client) Upload(ctx context.Context, fileName string, content io.Reader) (UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(FileField, fileName)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return UploadResult{}, fmt.Errorf("failed to write upload body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+UploadPath, &buf)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to build upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	var result UploadResult
	if err := c.do(httpReq, "upload", &result); err != nil {
		return UploadResult{}, err
	}
	return result, nil
}

// GenerateReport calls GET /generate-report?file=<parsedPath>.
func (c *Client) GenerateReport(ctx context.Context, parsedPath string) (Report, error) {
	q := url.Values{}
	q.Set("file", parsedPath)
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, ReportPath, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, fmt.Errorf("failed to build report request: %w", err)
	}

	var report Report
	if err := c.do(httpReq, "generate-report", &report); err != nil {
		return Report{}, err
	}
	return report, nil
}

func (c *Client) do(httpReq *http.Request, op string, out any) error {
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call parser %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Op: op, Code: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode parser %s response: %w", op, err)
	}
	return nil
}

var _ IParser = (*Client)(nil)
