package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"curapick-app-api/core/domain"
	coreerrors "curapick-app-api/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postSearch(h *SearchHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Search(w, req)
	return w
}

func TestSearch_Success(t *testing.T) {
	service := &mockCurationService{
		curateFunc: func(ctx context.Context, keywords []string) (*domain.CurationResult, error) {
			assert.Equal(t, []string{"비타민C", "아연"}, keywords)
			return &domain.CurationResult{
				Products: []domain.CuratedProduct{
					{
						Title:       "비타민C 1000mg",
						Description: "고함량 비타민C",
						Link:        "https://www.coupang.com/vp/1",
						Keyword:     "비타민C",
						Source:      "쿠팡",
						DisplayHost: "www.coupang.com",
						Position:    1,
						IsPriority:  true,
						Quality:     domain.QualityPriority,
					},
				},
				Keywords: []string{"비타민C", "아연"},
				Quality:  "priority_filtered",
			}, nil
		},
	}
	handler := NewSearchHandler(service, nopLogger{})

	w := postSearch(handler, `{"keywords":["비타민C","아연"]}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1), resp["total"])
	assert.Equal(t, "priority_filtered", resp["quality"])
	assert.NotContains(t, resp, "error")

	products := resp["products"].([]interface{})
	require.Len(t, products, 1)
	product := products[0].(map[string]interface{})
	assert.Equal(t, "비타민C 1000mg", product["title"])
	assert.Equal(t, "www.coupang.com", product["displayedLink"])
	assert.Equal(t, true, product["isPremium"])
	assert.NotContains(t, product, "SiteRank")
	assert.NotContains(t, product, "StrategyTier")
}

func TestSearch_EmptyKeywordsReturns400(t *testing.T) {
	service := &mockCurationService{
		curateFunc: func(ctx context.Context, keywords []string) (*domain.CurationResult, error) {
			t.Fatal("service should not be called for an empty batch")
			return nil, nil
		},
	}
	handler := NewSearchHandler(service, nopLogger{})

	for _, body := range []string{`{"keywords":[]}`, `{}`} {
		w := postSearch(handler, body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "검색 키워드가 필요합니다.", resp["error"])
	}
}

func TestSearch_MalformedBodyReturns400(t *testing.T) {
	service := &mockCurationService{
		curateFunc: func(ctx context.Context, keywords []string) (*domain.CurationResult, error) {
			t.Fatal("service should not be called for malformed JSON")
			return nil, nil
		},
	}
	handler := NewSearchHandler(service, nopLogger{})

	w := postSearch(handler, `{"keywords":`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "검색 키워드가 필요합니다.")
}

func TestSearch_ValidationErrorReturns400(t *testing.T) {
	service := &mockCurationService{
		curateFunc: func(ctx context.Context, keywords []string) (*domain.CurationResult, error) {
			return nil, &coreerrors.ValidationError{Field: "keywords", Message: "empty"}
		},
	}
	handler := NewSearchHandler(service, nopLogger{})

	w := postSearch(handler, `{"keywords":["비타민C"]}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearch_DegradedResultMarksErrorButStays200(t *testing.T) {
	service := &mockCurationService{
		curateFunc: func(ctx context.Context, keywords []string) (*domain.CurationResult, error) {
			return &domain.CurationResult{
				Products: []domain.CuratedProduct{
					{Title: "유산균 관련 건강보조식품", Link: "https://www.coupang.com/np/search?q=x", Quality: domain.QualitySample},
				},
				Keywords: keywords,
				Quality:  "fallback_sample",
				Degraded: true,
			}, nil
		},
	}
	handler := NewSearchHandler(service, nopLogger{})

	w := postSearch(handler, `{"keywords":["유산균"]}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "fallback_sample", resp["quality"])
	assert.Equal(t, "제품 검색 중 오류가 발생했습니다.", resp["error"])
}

func TestSearch_ServiceErrorDegradesToPlaceholders(t *testing.T) {
	service := &mockCurationService{
		curateFunc: func(ctx context.Context, keywords []string) (*domain.CurationResult, error) {
			return nil, fmt.Errorf("pipeline exploded")
		},
	}
	handler := NewSearchHandler(service, nopLogger{})

	w := postSearch(handler, `{"keywords":["오메가3"]}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "fallback_sample", resp["quality"])
	assert.Equal(t, "제품 검색 중 오류가 발생했습니다.", resp["error"])

	products := resp["products"].([]interface{})
	require.Len(t, products, 3)
	first := products[0].(map[string]interface{})
	assert.Equal(t, "오메가3", first["keyword"])
	assert.Contains(t, first["link"], "coupang.com")
}
