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
	"os"
	"path/filepath"
	"strings"
	"time"

	"code.sajari.com/docconv"
)

// ErrParse marks any failure to obtain a parse result from the service.
// The staged document is always left in place on this error so the caller
// can retry with the same path.
var ErrParse = errors.New("resume parse failed")

// SidecarPath returns the path of the raw-response JSON stored next to a
// staged document.
func SidecarPath(filePath string) string {
	return filePath + ".json"
}

// Client calls the external resume-parsing service. It performs no retries;
// retry policy belongs to the caller.
type Client struct {
	url     string
	apiKey  string
	version string
	http    *http.Client
}

func NewClient(url, apiKey, version string) *Client {
	return &Client{
		url:     url,
		apiKey:  apiKey,
		version: version,
		http:    &http.Client{Timeout: 90 * time.Second},
	}
}

// Parse submits a fully staged file to the parsing service and returns the
// structured result. Before returning it writes the raw service response as
// a JSON sidecar next to the document, so reprocessing never needs a second
// service call. The plain-text resume body is extracted locally when the
// service response omits it.
func (c *Client) Parse(ctx context.Context, filePath string) (*ParsedResume, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: open staged file: %v", ErrParse, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("%w: read staged file: %v", ErrParse, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("X-Service-Version", c.version)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrParse, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: service returned %d", ErrParse, resp.StatusCode)
	}

	var parsed ParsedResume
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrParse, err)
	}

	// Sidecar goes to disk before we hand the result back.
	if err := os.WriteFile(SidecarPath(filePath), raw, 0644); err != nil {
		return nil, fmt.Errorf("%w: write sidecar: %v", ErrParse, err)
	}

	if parsed.ResumeText == "" {
		// Best effort: a missing text body degrades to "", never to an error.
		parsed.ResumeText, _ = extractText(filePath)
	}

	return &parsed, nil
}

// ReadSidecar loads a previously stored raw response for a staged document.
func (c *Client) ReadSidecar(filePath string) (*ParsedResume, error) {
	raw, err := os.ReadFile(SidecarPath(filePath))
	if err != nil {
		return nil, err
	}
	var parsed ParsedResume
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode sidecar: %w", err)
	}
	if parsed.ResumeText == "" {
		parsed.ResumeText, _ = extractText(filePath)
	}
	return &parsed, nil
}

// extractText pulls the plain-text body out of the document itself.
func extractText(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", err
		}
		return string(content), nil
	default:
		res, err := docconv.ConvertPath(filePath)
		if err != nil {
			return "", err
		}
		return res.Body, nil
	}
}
