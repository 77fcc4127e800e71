// Package figma fetches FigJam board files from the Figma REST API. The
// client only retrieves the node tree; traversal and classification happen
// in the normalizer.
package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"prism-brain-be/pkg/connector"
)

const defaultBaseURL = "https://api.figma.com/v1"

var (
	boardKeyPattern = regexp.MustCompile(`/board/([a-zA-Z0-9_-]+)`)
	fileKeyPattern  = regexp.MustCompile(`/file/([a-zA-Z0-9_-]+)`)
)

type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Available reports whether the client can reach the API at all. Checked
// per ingestion call, not once at startup.
func (c *Client) Available() error {
	if c.token == "" {
		return connector.NewError(connector.ErrMissingCredential, "figma token not configured")
	}
	return nil
}

// ExtractFileKey pulls the file key out of a FigJam board or file URL.
func ExtractFileKey(url string) (string, error) {
	if m := boardKeyPattern.FindStringSubmatch(url); m != nil {
		return m[1], nil
	}
	if m := fileKeyPattern.FindStringSubmatch(url); m != nil {
		return m[1], nil
	}
	return "", connector.NewError(connector.ErrInvalidLocator, "not a figma board url: %s", url)
}

// FetchFile retrieves the full board document for a file key.
func (c *Client) FetchFile(ctx context.Context, fileKey string) (*File, error) {
	if err := c.Available(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/files/%s", c.baseURL, fileKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, connector.NewError(connector.ErrFetchFailed, "build request: %v", err)
	}
	req.Header.Set("X-Figma-Token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, connector.NewError(connector.ErrFetchFailed, "figma api: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, connector.NewError(connector.ErrFetchFailed, "figma api returned %d", resp.StatusCode)
	}

	var file File
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, connector.NewError(connector.ErrParseFailed, "decode board: %v", err)
	}
	return &file, nil
}
