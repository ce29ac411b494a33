// ABOUTME: Result filter removing blocked domains and review-style hits
// ABOUTME: Order-preserving pass over raw search hits before ranking

package curation

import "curapick-app-api/core/domain"

// FilterHits drops hits whose link contains a block-listed domain
// substring and hits whose title or snippet contains review language.
// Input order is preserved.
func FilterHits(hits []domain.SearchHit, reg *SiteRegistry) []domain.SearchHit {
	filtered := make([]domain.SearchHit, 0, len(hits))
	for _, hit := range hits {
		if reg.IsBlocked(hit.Link) {
			continue
		}
		if reg.HasReviewLanguage(hit.Title) || reg.HasReviewLanguage(hit.Snippet) {
			continue
		}
		filtered = append(filtered, hit)
	}
	return filtered
}
