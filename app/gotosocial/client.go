package gotosocial

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	mediaEndpoint    = "/api/v2/media"
	statusesEndpoint = "/api/v1/statuses"
)

// Client talks to a GoToSocial instance. Uploads can carry videos, so the
// request timeout is generous.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 120 * time.Second},
	}
}

// UploadMedia posts one local file to the media endpoint and returns the
// server-assigned media ID. Only HTTP 200 counts as success; any other
// response surfaces as an error carrying the status and body text.
func (c *Client) UploadMedia(ctx context.Context, path, description string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open media file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read media file: %w", err)
	}

	if description != "" {
		if err := writer.WriteField("description", description); err != nil {
			return "", fmt.Errorf("failed to write description field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+mediaEndpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload media: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var media mediaResponse
	if err := json.Unmarshal(respBody, &media); err != nil {
		return "", fmt.Errorf("failed to decode media response: %w", err)
	}
	if media.ID == "" {
		return "", fmt.Errorf("media response carries no id")
	}

	return media.ID, nil
}

// CreateStatus submits one status to the statuses endpoint. Only HTTP 200
// counts as success.
func (c *Client) CreateStatus(ctx context.Context, status Status) error {
	if status.MediaIDs == nil {
		status.MediaIDs = []string{}
	}

	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to encode status payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+statusesEndpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to create status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return nil
}
