// ABOUTME: Fallback escalator driving the tiered search strategy state machine
// ABOUTME: Priority retailer queries first, then allow-list strategies, then placeholders

package curation

import (
	"context"
	"fmt"
	"net/url"

	"curapick-app-api/core/domain"
	"curapick-app-api/core/interfaces"
	"golang.org/x/time/rate"
)

// escalatorState names the tiers of the fallback state machine.
type escalatorState int

const (
	statePriorityTier escalatorState = iota
	stateAllowListTier
	stateDone
)

// Keyword consultation bounds per tier. Only the leading keywords are
// consulted to bound external call volume.
const (
	priorityTierKeywords  = 2
	allowListTierKeywords = 3
)

// Options tunes the escalator's stopping and bounding behavior.
type Options struct {
	// MaxProducts is the global cap on accumulated products
	MaxProducts int

	// TargetProducts stops tier escalation once reached
	TargetProducts int

	// MinProducts is topped up with placeholders when not reached
	MinProducts int

	// PerPairLimit bounds hits kept per keyword/site or keyword/strategy pair
	PerPairLimit int

	// ResultsPerQuery is the result count requested per search call
	ResultsPerQuery int
}

// Escalator orchestrates the tiered search. Between successive search
// calls it waits on a minimum-interval limiter to respect the upstream
// provider's rate limit; the wait is bound to the request context so an
// abandoned request stops consuming quota.
type Escalator struct {
	searcher interfaces.ProductSearcher
	registry *SiteRegistry
	dedup    *Deduplicator
	pacer    *rate.Limiter
	logger   interfaces.Logger
	opts     Options
}

// NewEscalator creates an escalator. interval is the minimum spacing
// between search calls; zero disables pacing.
func NewEscalator(searcher interfaces.ProductSearcher, reg *SiteRegistry, dedup *Deduplicator, pacer *rate.Limiter, logger interfaces.Logger, opts Options) *Escalator {
	return &Escalator{
		searcher: searcher,
		registry: reg,
		dedup:    dedup,
		pacer:    pacer,
		logger:   logger,
		opts:     opts,
	}
}

// Run drives the state machine over the keyword batch and returns the
// accumulated products. Individual search failures yield zero hits and
// the machine continues; only context cancellation aborts the run.
func (e *Escalator) Run(ctx context.Context, keywords []string) ([]domain.CuratedProduct, error) {
	products := make([]domain.CuratedProduct, 0, e.opts.MaxProducts)

	state := statePriorityTier
	for state != stateDone {
		switch state {
		case statePriorityTier:
			var err error
			products, err = e.runPriorityTier(ctx, keywords, products)
			if err != nil {
				return products, err
			}
			state = e.advance(products, stateAllowListTier)
		case stateAllowListTier:
			var err error
			products, err = e.runAllowListTier(ctx, keywords, products)
			if err != nil {
				return products, err
			}
			state = stateDone
		}
	}

	products = e.topUpWithPlaceholders(keywords, products)
	return products, nil
}

// advance returns stateDone once the target count or global cap is
// reached, otherwise the next tier.
func (e *Escalator) advance(products []domain.CuratedProduct, next escalatorState) escalatorState {
	if len(products) >= e.opts.TargetProducts || len(products) >= e.opts.MaxProducts {
		return stateDone
	}
	return next
}

// runPriorityTier issues one narrow query per (keyword, priority site)
// pair, keeping at most PerPairLimit hits from each.
func (e *Escalator) runPriorityTier(ctx context.Context, keywords []string, products []domain.CuratedProduct) ([]domain.CuratedProduct, error) {
	for _, keyword := range boundKeywords(keywords, priorityTierKeywords) {
		for _, site := range e.registry.PrioritySites() {
			if len(products) >= e.opts.MaxProducts || len(products) >= e.opts.TargetProducts {
				return products, nil
			}

			query := BuildPrioritySiteQuery(keyword, site)
			hits, err := e.pacedSearch(ctx, query)
			if err != nil {
				if ctx.Err() != nil {
					return products, ctx.Err()
				}
				continue
			}

			products = e.collect(products, hits, keyword, TierPrioritySite)
		}
	}
	return products, nil
}

// runAllowListTier walks strategies 1..3, issuing one query per
// (keyword, strategy) pair and keeping at most PerPairLimit hits each.
// Escalation stops as soon as the target count is reached.
func (e *Escalator) runAllowListTier(ctx context.Context, keywords []string, products []domain.CuratedProduct) ([]domain.CuratedProduct, error) {
	for strategy := StrategySiteScoped; strategy <= StrategyBroad; strategy++ {
		for _, keyword := range boundKeywords(keywords, allowListTierKeywords) {
			if len(products) >= e.opts.MaxProducts || len(products) >= e.opts.TargetProducts {
				return products, nil
			}

			query := BuildStrategyQuery(keyword, strategy, e.registry)
			hits, err := e.pacedSearch(ctx, query)
			if err != nil {
				if ctx.Err() != nil {
					return products, ctx.Err()
				}
				continue
			}

			products = e.collect(products, hits, keyword, strategy)
		}
	}
	return products, nil
}

// pacedSearch waits for the minimum-interval limiter, then issues one
// search call. A failed call is logged and reported as an error the
// caller treats as zero hits.
func (e *Escalator) pacedSearch(ctx context.Context, query string) ([]domain.SearchHit, error) {
	if e.pacer != nil {
		if err := e.pacer.Wait(ctx); err != nil {
			return nil, err
		}
	}

	hits, err := e.searcher.Search(ctx, query, e.opts.ResultsPerQuery)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("Search call failed, continuing with zero hits", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
		}
		return nil, err
	}
	return hits, nil
}

// collect filters, ranks and deduplicates one batch of hits, appending
// up to PerPairLimit accepted products.
func (e *Escalator) collect(products []domain.CuratedProduct, hits []domain.SearchHit, keyword string, tier int) []domain.CuratedProduct {
	filtered := FilterHits(hits, e.registry)
	SortHits(filtered, e.registry)

	kept := 0
	for _, hit := range filtered {
		if kept >= e.opts.PerPairLimit || len(products) >= e.opts.MaxProducts {
			break
		}

		product, ok := e.makeProduct(hit, keyword, tier)
		if !ok {
			continue
		}
		if !e.dedup.Accept(products, product) {
			continue
		}

		products = append(products, product)
		kept++
	}
	return products
}

// makeProduct reshapes a hit into a curated product. Hits whose link
// does not parse as a URL are dropped.
func (e *Escalator) makeProduct(hit domain.SearchHit, keyword string, tier int) (domain.CuratedProduct, bool) {
	parsed, err := url.Parse(hit.Link)
	if err != nil || parsed.Hostname() == "" {
		if e.logger != nil {
			e.logger.Debug("Dropping hit with unparseable link", map[string]interface{}{
				"link": hit.Link,
			})
		}
		return domain.CuratedProduct{}, false
	}

	source := hit.Source
	if source == "" {
		source = parsed.Hostname()
	}

	rank := e.registry.SiteRank(hit.Link)
	quality := domain.QualityStandard
	switch {
	case tier == TierPrioritySite:
		quality = domain.QualityPriority
	case rank != domain.SiteRankUnmatched:
		quality = domain.QualityPremium
	}

	return domain.CuratedProduct{
		Title:        CleanTitle(hit.Title, keyword),
		Description:  CleanDescription(hit.Snippet),
		Link:         hit.Link,
		Keyword:      keyword,
		Source:       source,
		DisplayHost:  parsed.Hostname(),
		Position:     hit.Position,
		IsPriority:   rank != domain.SiteRankUnmatched,
		Quality:      quality,
		SiteRank:     rank,
		StrategyTier: tier,
	}, true
}

// topUpWithPlaceholders appends deterministic placeholder products
// until the minimum count is met, skipping links already present.
func (e *Escalator) topUpWithPlaceholders(keywords []string, products []domain.CuratedProduct) []domain.CuratedProduct {
	if len(products) >= e.opts.MinProducts {
		return products
	}

	keyword := "건강보조식품"
	if len(keywords) > 0 && keywords[0] != "" {
		keyword = keywords[0]
	}

	for _, placeholder := range PlaceholderProducts(keyword) {
		if len(products) >= e.opts.MinProducts || len(products) >= e.opts.MaxProducts {
			break
		}
		if !e.dedup.Accept(products, placeholder) {
			continue
		}
		products = append(products, placeholder)
	}
	return products
}

// boundKeywords returns at most n leading keywords.
func boundKeywords(keywords []string, n int) []string {
	if len(keywords) > n {
		return keywords[:n]
	}
	return keywords
}

// PlaceholderProducts returns the fixed, keyword-templated fallback
// products pointing at known retailer search pages.
func PlaceholderProducts(keyword string) []domain.CuratedProduct {
	escaped := url.QueryEscape(keyword + " 건강보조식품")
	return []domain.CuratedProduct{
		{
			Title:        keyword + " 관련 건강보조식품",
			Description:  "현재 실시간 검색 결과를 가져올 수 없어 샘플 정보를 표시합니다. 정확한 제품 정보는 직접 검색해보시기 바랍니다.",
			Link:         "https://www.coupang.com/np/search?q=" + escaped,
			Keyword:      keyword,
			Source:       "쿠팡",
			DisplayHost:  "www.coupang.com",
			Position:     1,
			IsPriority:   true,
			Quality:      domain.QualitySample,
			SiteRank:     0,
			StrategyTier: StrategyBroad,
		},
		{
			Title:        keyword + " 영양제 모음",
			Description:  "아이허브에서 관련 영양제를 직접 검색해 보실 수 있습니다.",
			Link:         "https://kr.iherb.com/search?kw=" + url.QueryEscape(keyword),
			Keyword:      keyword,
			Source:       "아이허브",
			DisplayHost:  "kr.iherb.com",
			Position:     2,
			IsPriority:   true,
			Quality:      domain.QualitySample,
			SiteRank:     1,
			StrategyTier: StrategyBroad,
		},
		{
			Title:        fmt.Sprintf("%s 건강기능식품 특가", keyword),
			Description:  "올리브영 온라인몰에서 관련 건강기능식품을 확인해 보세요.",
			Link:         "https://www.oliveyoung.co.kr/store/search/getSearchMain.do?query=" + url.QueryEscape(keyword),
			Keyword:      keyword,
			Source:       "올리브영",
			DisplayHost:  "www.oliveyoung.co.kr",
			Position:     3,
			IsPriority:   true,
			Quality:      domain.QualitySample,
			SiteRank:     2,
			StrategyTier: StrategyBroad,
		},
	}
}
