// ABOUTME: Query strategy generator for the tiered product search
// ABOUTME: Builds search-engine query strings with site scoping and intent terms

package curation

import (
	"fmt"
	"strings"
)

// Strategy tiers for allow-list queries. Tier 1 is the narrowest
// (site-scoped), tier 3 the broadest last resort.
const (
	// TierPrioritySite marks hits from per-site priority retailer queries
	TierPrioritySite = 0

	StrategySiteScoped = 1
	StrategyOpenIntent = 2
	StrategyBroad      = 3
)

// querySiteSliceLen is how many leading allow-list entries the
// site-scoped strategy ORs together. More sites dilute the query past
// the search provider's operator limits.
const querySiteSliceLen = 6

// Negative operators excluding review-style content from results.
const reviewExclusions = "-리뷰 -후기 -체험 -사용기"

// BuildPrioritySiteQuery builds the narrow per-retailer query used by
// the priority tier: one site, quoted keyword, supplement domain terms.
func BuildPrioritySiteQuery(keyword, site string) string {
	return fmt.Sprintf(`site:%s "%s" 건강보조식품 영양제`, site, keyword)
}

// BuildStrategyQuery builds the query string for one keyword and one
// allow-list strategy tier. Always returns a non-empty string for a
// non-empty keyword.
func BuildStrategyQuery(keyword string, strategy int, reg *SiteRegistry) string {
	switch strategy {
	case StrategySiteScoped:
		sites := reg.AllowedSites()
		if len(sites) > querySiteSliceLen {
			sites = sites[:querySiteSliceLen]
		}
		scoped := make([]string, 0, len(sites))
		for _, site := range sites {
			scoped = append(scoped, "site:"+site)
		}
		return fmt.Sprintf(`(%s) "%s" 건강보조식품 영양제 구매 할인 %s`,
			strings.Join(scoped, " OR "), keyword, reviewExclusions)
	case StrategyOpenIntent:
		return fmt.Sprintf(`"%s" 건강보조식품 영양제 구매 할인 특가 %s`, keyword, reviewExclusions)
	default:
		return fmt.Sprintf(`%s 영양제 구매 -리뷰 -후기`, keyword)
	}
}
