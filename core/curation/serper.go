// ABOUTME: Serper web-search client used by the curation pipeline
// ABOUTME: Issues one Korean-locale search per query and maps organic results to hits

package curation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"curapick-app-api/core/domain"
	coreerrors "curapick-app-api/core/errors"
	"curapick-app-api/core/interfaces"
)

const serperEndpoint = "https://google.serper.dev/search"

// SerperClient implements interfaces.ProductSearcher against the
// Serper search API. Results are pinned to the Korean locale.
type SerperClient struct {
	deps     interfaces.Dependencies
	apiKey   string
	endpoint string
}

// NewSerperClient creates a Serper search client.
func NewSerperClient(deps interfaces.Dependencies, apiKey string) *SerperClient {
	return &SerperClient{
		deps:     deps,
		apiKey:   apiKey,
		endpoint: serperEndpoint,
	}
}

// serperRequest is the Serper search request body.
type serperRequest struct {
	Query   string `json:"q"`
	Num     int    `json:"num"`
	Country string `json:"gl"`
	Locale  string `json:"hl"`
	Type    string `json:"type"`
}

// serperResponse is the subset of the Serper response the pipeline consumes.
type serperResponse struct {
	Organic []struct {
		Title    string `json:"title"`
		Snippet  string `json:"snippet"`
		Link     string `json:"link"`
		Position int    `json:"position"`
		Source   string `json:"source"`
	} `json:"organic"`
}

// Search issues one search call and returns the raw organic hits.
func (c *SerperClient) Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error) {
	if c.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	payload, err := json.Marshal(serperRequest{
		Query:   query,
		Num:     limit,
		Country: "kr",
		Locale:  "ko",
		Type:    "search",
	})
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to encode search request")
	}

	headers := map[string]string{"X-API-KEY": c.apiKey}
	resp, err := c.deps.HTTPClient.Post(ctx, c.endpoint, headers, bytes.NewReader(payload))
	if err != nil {
		return nil, coreerrors.WrapError(err, "search call failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "search request rejected",
			API:        "serper",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read search response")
	}

	var apiResponse serperResponse
	if err := json.Unmarshal(bodyBytes, &apiResponse); err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse search response")
	}

	hits := make([]domain.SearchHit, 0, len(apiResponse.Organic))
	for _, r := range apiResponse.Organic {
		hits = append(hits, domain.SearchHit{
			Title:    r.Title,
			Snippet:  r.Snippet,
			Link:     r.Link,
			Position: r.Position,
			Source:   r.Source,
		})
	}

	return hits, nil
}
