package curation

import (
	"context"
	"io"
	"strings"

	"curapick-app-api/core/domain"
	"curapick-app-api/core/interfaces"
)

// mockSearcher is a mock implementation of the ProductSearcher interface
type mockSearcher struct {
	searchFunc func(ctx context.Context, query string, limit int) ([]domain.SearchHit, error)
	queries    []string
}

func (m *mockSearcher) Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error) {
	m.queries = append(m.queries, query)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit)
	}
	return nil, nil
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	postFunc func(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, url, headers, body)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// nopLogger discards all log calls
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// testRegistry returns a small registry for pipeline tests
func testRegistry() *SiteRegistry {
	return NewSiteRegistry(
		[]string{"coupang.com", "iherb.com", "gmarket.co.kr"},
		2,
		[]string{"blog.naver.com", "youtube.com"},
		[]string{"리뷰", "후기", "체험"},
		[]string{"구매", "할인", "특가"},
	)
}
