// ABOUTME: SiteRegistry holds the static domain allow/block lists and marker terms
// ABOUTME: Injected into the pipeline at construction so tests can substitute smaller registries

package curation

import (
	"strings"

	"curapick-app-api/core/domain"
)

// SiteRegistry is the read-only configuration the curation pipeline
// consults: an ordered allow-list of shopping sites (priority retailers
// first), a block-list of non-commerce domains, review-language marker
// terms, and purchase-intent terms. It carries no mutable state and is
// safe for concurrent use.
type SiteRegistry struct {
	allowed       []string
	priorityCount int
	blocked       []string
	reviewMarkers []string
	purchaseTerms []string
}

// NewSiteRegistry builds a registry. The first priorityCount entries of
// allowed are treated as priority retailers for the per-site query tier.
func NewSiteRegistry(allowed []string, priorityCount int, blocked, reviewMarkers, purchaseTerms []string) *SiteRegistry {
	if priorityCount > len(allowed) {
		priorityCount = len(allowed)
	}
	if priorityCount < 0 {
		priorityCount = 0
	}
	return &SiteRegistry{
		allowed:       allowed,
		priorityCount: priorityCount,
		blocked:       blocked,
		reviewMarkers: reviewMarkers,
		purchaseTerms: purchaseTerms,
	}
}

// DefaultRegistry returns the production site lists for Korean
// health-supplement shopping.
func DefaultRegistry() *SiteRegistry {
	return NewSiteRegistry(
		[]string{
			"coupang.com",
			"iherb.com",
			"oliveyoung.co.kr",
			"gmarket.co.kr",
			"ssg.com",
			"lotteon.com",
			"11st.co.kr",
			"auction.co.kr",
			"wemakeprice.com",
			"gsshop.com",
			"hmall.com",
		},
		3,
		[]string{
			"tiktok.com",
			"blog.naver.com",
			"youtube.com",
			"instagram.com",
			"facebook.com",
			"twitter.com",
			"cafe.naver.com",
			"tistory.com",
			"brunch.co.kr",
			"dcinside.com",
			"fmkorea.com",
			"reddit.com",
			"namu.wiki",
		},
		[]string{"리뷰", "후기", "체험", "사용기", "솔직", "추천", "비교", "분석", "평가"},
		[]string{"구매", "할인", "특가", "세일", "가격", "최저가", "쿠폰"},
	)
}

// PrioritySites returns the leading slice of the allow-list used for
// per-site priority queries.
func (r *SiteRegistry) PrioritySites() []string {
	return r.allowed[:r.priorityCount]
}

// AllowedSites returns the full ordered allow-list.
func (r *SiteRegistry) AllowedSites() []string {
	return r.allowed
}

// SiteRank returns the allow-list index of the first listed domain the
// lowercased link contains, or domain.SiteRankUnmatched when none match.
// Substring containment is intentional: it catches subdomains like
// m.coupang.com without a separate mobile list.
func (r *SiteRegistry) SiteRank(link string) int {
	lower := strings.ToLower(link)
	for i, site := range r.allowed {
		if strings.Contains(lower, site) {
			return i
		}
	}
	return domain.SiteRankUnmatched
}

// IsAllowed reports whether the link's host is on the allow-list.
func (r *SiteRegistry) IsAllowed(link string) bool {
	return r.SiteRank(link) != domain.SiteRankUnmatched
}

// IsBlocked reports whether the lowercased link contains any
// block-listed domain substring.
func (r *SiteRegistry) IsBlocked(link string) bool {
	lower := strings.ToLower(link)
	for _, site := range r.blocked {
		if strings.Contains(lower, site) {
			return true
		}
	}
	return false
}

// HasReviewLanguage reports whether the lowercased text contains any
// review/testimonial marker term. Containment rather than token match
// catches inflected forms; titles that legitimately contain a marker
// word are over-filtered, which is the accepted trade-off.
func (r *SiteRegistry) HasReviewLanguage(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range r.reviewMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// PurchaseScore scores purchase intent in a hit's text. Each term
// present in the title contributes 2, each present in the snippet 1.
func (r *SiteRegistry) PurchaseScore(title, snippet string) int {
	score := 0
	for _, term := range r.purchaseTerms {
		if strings.Contains(title, term) {
			score += 2
		}
		if strings.Contains(snippet, term) {
			score++
		}
	}
	return score
}
