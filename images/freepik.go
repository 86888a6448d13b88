// Package images sources a header image for an article: a stock-photo
// search first, text-to-image generation as the fallback.
package images

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	freepikResourcesURL = "https://api.freepik.com/v1/resources"
	freepikTimeout      = 10 * time.Second
)

// FreepikClient queries the Freepik search API for a topic-relevant
// photo. Every failure mode degrades to a miss; the client never
// returns an error to its caller.
type FreepikClient struct {
	apiKey string
	client *http.Client
	log    *slog.Logger

	// BaseURL overrides the API endpoint, for tests.
	BaseURL string
}

func NewFreepikClient(apiKey string, client *http.Client, log *slog.Logger) *FreepikClient {
	if client == nil {
		client = &http.Client{Timeout: freepikTimeout}
	}
	if log == nil {
		log = slog.Default()
	}
	return &FreepikClient{
		apiKey:  apiKey,
		client:  client,
		log:     log,
		BaseURL: freepikResourcesURL,
	}
}

// previewShapes are the known nestings of the preview URL in the search
// response, probed in order. The upstream contract has shifted between
// the two; which one matched is logged for observability.
var previewShapes = []struct {
	name    string
	extract func(item json.RawMessage) string
}{
	{"attributes.preview", func(item json.RawMessage) string {
		var v struct {
			Attributes struct {
				Preview struct {
					URL string `json:"url"`
				} `json:"preview"`
			} `json:"attributes"`
		}
		if err := json.Unmarshal(item, &v); err != nil {
			return ""
		}
		return v.Attributes.Preview.URL
	}},
	{"images.preview", func(item json.RawMessage) string {
		var v struct {
			Images struct {
				Preview struct {
					URL string `json:"url"`
				} `json:"preview"`
			} `json:"images"`
		}
		if err := json.Unmarshal(item, &v); err != nil {
			return ""
		}
		return v.Images.Preview.URL
	}},
}

// Search looks up one photo for the query and returns its preview URL.
// A missing credential skips the network call entirely.
func (c *FreepikClient) Search(ctx context.Context, query string) (string, bool) {
	if c.apiKey == "" {
		c.log.Debug("freepik credential unset, skipping search")
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	params := url.Values{}
	params.Set("term", query)
	params.Set("limit", "1")
	params.Set("filters[content_type]", "photo")
	req.URL.RawQuery = params.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("freepik request failed", "error", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("freepik returned non-200", "status", resp.StatusCode)
		return "", false
	}

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Warn("freepik response decode failed", "error", err)
		return "", false
	}
	if len(body.Data) == 0 {
		return "", false
	}

	for _, shape := range previewShapes {
		if u := shape.extract(body.Data[0]); u != "" {
			c.log.Debug("freepik preview matched", "shape", shape.name)
			return u, true
		}
	}
	c.log.Warn("freepik response matched no known preview shape")
	return "", false
}
