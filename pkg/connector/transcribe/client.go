// Package transcribe talks to a Whisper-compatible transcription server
// (e.g. whisper.cpp or any OpenAI-style /v1/audio/transcriptions endpoint).
// The core only consumes the resulting segments; timeouts and model choice
// stay inside this connector.
package transcribe

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
	"time"

	"prism-brain-be/pkg/connector"
)

type Client struct {
	baseURL string
	model   string
	http    *http.Client
}

func NewClient(baseURL, model string) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		// Transcription of long recordings is slow; generous timeout.
		http: &http.Client{Timeout: 5 * time.Minute},
	}
}

// Available is checked per ingestion call so a missing backend surfaces as
// a structured unsupported-capability result, not a startup flag.
func (c *Client) Available() error {
	if c.baseURL == "" {
		return connector.NewError(connector.ErrUnsupportedCapability, "transcription backend not configured")
	}
	return nil
}

// Transcribe uploads the audio file and returns the ordered segment list.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (*connector.Transcript, error) {
	if err := c.Available(); err != nil {
		return nil, err
	}

	f, err := os.Open(audioPath)
	if err != nil {
		return nil, connector.NewError(connector.ErrInvalidLocator, "open audio file: %v", err)
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, connector.NewError(connector.ErrFetchFailed, "build upload: %v", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, connector.NewError(connector.ErrFetchFailed, "read audio file: %v", err)
	}
	_ = writer.WriteField("model", c.model)
	_ = writer.WriteField("response_format", "verbose_json")
	if err := writer.Close(); err != nil {
		return nil, connector.NewError(connector.ErrFetchFailed, "finalize upload: %v", err)
	}

	url := fmt.Sprintf("%s/v1/audio/transcriptions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, connector.NewError(connector.ErrFetchFailed, "build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, connector.NewError(connector.ErrFetchFailed, "transcription backend: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, connector.NewError(connector.ErrFetchFailed, "transcription backend returned %d", resp.StatusCode)
	}

	var transcript connector.Transcript
	if err := json.NewDecoder(resp.Body).Decode(&transcript); err != nil {
		return nil, connector.NewError(connector.ErrParseFailed, "decode transcript: %v", err)
	}
	return &transcript, nil
}
