// ABOUTME: Result ranker ordering hits and products by composite preference keys
// ABOUTME: Allow-list rank first, purchase-intent score second, strategy tier last

package curation

import (
	"sort"

	"curapick-app-api/core/domain"
)

// SortHits orders one batch of filtered hits in place by allow-list
// rank (ascending, earlier-listed domain wins) and then purchase-intent
// score (descending). The sort is stable so ties keep the upstream
// order. No numeric score leaves this function.
func SortHits(hits []domain.SearchHit, reg *SiteRegistry) {
	sort.SliceStable(hits, func(i, j int) bool {
		ri, rj := reg.SiteRank(hits[i].Link), reg.SiteRank(hits[j].Link)
		if ri != rj {
			return ri < rj
		}
		si := reg.PurchaseScore(hits[i].Title, hits[i].Snippet)
		sj := reg.PurchaseScore(hits[j].Title, hits[j].Snippet)
		return si > sj
	})
}

// SortProducts orders the accumulated curated list in place by
// allow-list rank, then purchase-intent score over the cleaned
// title/description, then origin strategy tier (earlier tiers win).
func SortProducts(products []domain.CuratedProduct, reg *SiteRegistry) {
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].SiteRank != products[j].SiteRank {
			return products[i].SiteRank < products[j].SiteRank
		}
		si := reg.PurchaseScore(products[i].Title, products[i].Description)
		sj := reg.PurchaseScore(products[j].Title, products[j].Description)
		if si != sj {
			return si > sj
		}
		return products[i].StrategyTier < products[j].StrategyTier
	})
}
