// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"curapick-app-api/core/domain"
)

// AnalysisService turns free-text symptoms into a health explanation
// and a list of product search keywords.
type AnalysisService interface {
	AnalyzeSymptoms(ctx context.Context, symptoms string) (*domain.Analysis, error)
}

// CurationService turns a keyword batch into a curated product list.
type CurationService interface {
	CurateProducts(ctx context.Context, keywords []string) (*domain.CurationResult, error)
}

// ProductSearcher issues one web-search query and returns the raw hits.
// Implementations wrap an external search provider.
type ProductSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error)
}
