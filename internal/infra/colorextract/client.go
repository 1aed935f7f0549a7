package colorextract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yanqian/closet-stylist/internal/domain/closet"
	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

// Client calls an external dominant-color service. The service receives the
// raw photo bytes and answers with a single hex color.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Extract posts the photo and parses the dominant color from the response.
func (c *Client) Extract(ctx context.Context, data []byte, mimeType string) (outfit.Color, error) {
	endpoint := c.baseURL + "/v1/dominant-color"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return outfit.Color{}, fmt.Errorf("build color request: %w", err)
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", mimeType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return outfit.Color{}, fmt.Errorf("color request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return outfit.Color{}, fmt.Errorf("color request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return outfit.Color{}, fmt.Errorf("read color response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return outfit.Color{}, fmt.Errorf("decode color response: %w", err)
	}
	if raw.Code != 0 {
		return outfit.Color{}, fmt.Errorf("color api error: %s", raw.ErrorMsg)
	}

	color, err := outfit.ParseHex(raw.Data.Color)
	if err != nil {
		return outfit.Color{}, fmt.Errorf("color api returned %q: %w", raw.Data.Color, err)
	}
	return color, nil
}

type apiResponse struct {
	Code     int     `json:"code"`
	ErrorMsg string  `json:"errorMsg"`
	Data     apiData `json:"data"`
}

type apiData struct {
	Color      string  `json:"color"`
	Confidence float64 `json:"confidence"`
}

var _ closet.ColorExtractor = (*Client)(nil)
