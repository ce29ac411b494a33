// ABOUTME: Product domain models for the search curation pipeline
// ABOUTME: Defines raw search hits and the curated products emitted to clients

package domain

// SearchHit represents one raw result item from the external web search.
type SearchHit struct {
	// Title is the result's title text
	Title string

	// Snippet is the short description text under the title
	Snippet string

	// Link is the result URL
	Link string

	// Position is the result's rank in the upstream response (1-based)
	Position int

	// Source is an optional source label supplied by the search provider
	Source string
}

// QualityClass describes how a curated product was selected.
type QualityClass string

const (
	// QualityPriority marks products found via priority retailer queries
	QualityPriority QualityClass = "priority"

	// QualityPremium marks products from allow-listed shopping sites
	QualityPremium QualityClass = "premium"

	// QualityStandard marks products accepted from the open web
	QualityStandard QualityClass = "standard"

	// QualitySample marks deterministic placeholder products
	QualitySample QualityClass = "sample"
)

// SiteRankUnmatched is the sentinel priority rank for links whose host is
// not on the allow-list. Lower ranks are more preferred.
const SiteRankUnmatched = 1 << 20

// CuratedProduct is a search hit that survived filtering, ranking and
// deduplication, reshaped for display. JSON field names follow the wire
// contract of the original endpoint.
type CuratedProduct struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Link        string       `json:"link"`
	Keyword     string       `json:"keyword"`
	Source      string       `json:"source"`
	DisplayHost string       `json:"displayedLink"`
	Position    int          `json:"position"`
	IsPriority  bool         `json:"isPremium"`
	Quality     QualityClass `json:"quality"`

	// SiteRank is the product's index in the allow-list, or
	// SiteRankUnmatched when its host is not listed. Internal sort key.
	SiteRank int `json:"-"`

	// StrategyTier records which query strategy produced the product
	// (0 = priority site query, 1..3 = allow-list strategies).
	// Internal sort key.
	StrategyTier int `json:"-"`
}

// CurationResult is the outcome of one curation pipeline run.
type CurationResult struct {
	// Products is the final bounded, deduplicated, ranked list
	Products []CuratedProduct

	// Keywords echoes the keyword batch the pipeline consulted
	Keywords []string

	// Quality tags which strategy tier(s) contributed, e.g.
	// "priority_filtered", "premium_filtered", "fallback_sample"
	Quality string

	// Degraded is true when the entire pipeline failed and the result
	// contains only placeholder products
	Degraded bool
}
