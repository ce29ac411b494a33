// ABOUTME: Curation service orchestrating the product search pipeline
// ABOUTME: Validates keyword batches, drives the escalator, and assembles the final result

package curation

import (
	"context"
	"fmt"
	"time"

	"curapick-app-api/core/domain"
	coreerrors "curapick-app-api/core/errors"
	"curapick-app-api/core/interfaces"
	"golang.org/x/time/rate"
)

// maxKeywordsConsulted bounds the keyword batch; only the leading
// keywords are ever searched to cap external call volume.
const maxKeywordsConsulted = 3

// Quality tags describing which tier(s) contributed to a result.
const (
	qualityPriorityFiltered = "priority_filtered"
	qualityPremiumFiltered  = "premium_filtered"
	qualityStandard         = "standard"
	qualityFallbackSample   = "fallback_sample"
)

// Service runs the product curation pipeline for one keyword batch.
// Each request gets an independent pipeline run; the only shared state
// is the read-only SiteRegistry.
type Service struct {
	deps      interfaces.Dependencies
	registry  *SiteRegistry
	escalator *Escalator
	opts      Options
}

// NewService creates a curation service. A nil searcher enables demo
// mode: every request returns the deterministic sample products.
func NewService(deps interfaces.Dependencies, searcher interfaces.ProductSearcher, reg *SiteRegistry, opts Options, overlapThreshold float64, searchInterval time.Duration) *Service {
	var pacer *rate.Limiter
	if searchInterval > 0 {
		pacer = rate.NewLimiter(rate.Every(searchInterval), 1)
	}

	dedup := NewDeduplicator(overlapThreshold)

	var escalator *Escalator
	if searcher != nil {
		escalator = NewEscalator(searcher, reg, dedup, pacer, deps.Logger, opts)
	}

	return &Service{
		deps:      deps,
		registry:  reg,
		escalator: escalator,
		opts:      opts,
	}
}

// CurateProducts validates the keyword batch, runs the escalator, and
// truncates the ranked, deduplicated output to the global cap. Only the
// leading keywords are consulted, but the result echoes the caller's
// full list. Upstream failures degrade to the placeholder set rather
// than erroring: the only error returned is a ValidationError for an
// empty batch.
func (s *Service) CurateProducts(ctx context.Context, keywords []string) (result *domain.CurationResult, err error) {
	if len(keywords) == 0 {
		return nil, &coreerrors.ValidationError{Field: "keywords", Message: "keyword batch cannot be empty"}
	}

	consulted := boundKeywords(keywords, maxKeywordsConsulted)

	// A panic anywhere in the pipeline degrades to placeholders; the
	// caller-facing contract is always degrade, never fail hard.
	defer func() {
		if r := recover(); r != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Error("Curation pipeline panicked, returning placeholder products", map[string]interface{}{
					"panic":    fmt.Sprintf("%v", r),
					"keywords": consulted,
				})
			}
			result = s.fallbackResult(keywords)
			err = nil
		}
	}()

	// Demo mode without a searcher configured
	if s.escalator == nil {
		products := PlaceholderProducts(consulted[0])
		if len(products) > s.opts.MaxProducts {
			products = products[:s.opts.MaxProducts]
		}
		return &domain.CurationResult{
			Products: products,
			Keywords: keywords,
			Quality:  qualityFallbackSample,
		}, nil
	}

	products, runErr := s.escalator.Run(ctx, consulted)
	if runErr != nil && len(products) == 0 {
		if s.deps.Logger != nil {
			s.deps.Logger.Error("Curation pipeline aborted, returning placeholder products", map[string]interface{}{
				"error":    runErr.Error(),
				"keywords": consulted,
			})
		}
		return s.fallbackResult(keywords), nil
	}

	SortProducts(products, s.registry)
	if len(products) > s.opts.MaxProducts {
		products = products[:s.opts.MaxProducts]
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Curation pipeline finished", map[string]interface{}{
			"keywords": consulted,
			"products": len(products),
		})
	}

	return &domain.CurationResult{
		Products: products,
		Keywords: keywords,
		Quality:  qualityTag(products),
	}, nil
}

// fallbackResult is the full placeholder set with the degraded flag.
func (s *Service) fallbackResult(keywords []string) *domain.CurationResult {
	keyword := "건강보조식품"
	if len(keywords) > 0 && keywords[0] != "" {
		keyword = keywords[0]
	}

	products := PlaceholderProducts(keyword)
	if len(products) > s.opts.MaxProducts {
		products = products[:s.opts.MaxProducts]
	}

	return &domain.CurationResult{
		Products: products,
		Keywords: keywords,
		Quality:  qualityFallbackSample,
		Degraded: true,
	}
}

// qualityTag describes the best quality class present in the list.
func qualityTag(products []domain.CuratedProduct) string {
	hasPriority, hasPremium, hasReal := false, false, false
	for _, p := range products {
		switch p.Quality {
		case domain.QualityPriority:
			hasPriority = true
			hasReal = true
		case domain.QualityPremium:
			hasPremium = true
			hasReal = true
		case domain.QualityStandard:
			hasReal = true
		}
	}

	switch {
	case hasPriority:
		return qualityPriorityFiltered
	case hasPremium:
		return qualityPremiumFiltered
	case hasReal:
		return qualityStandard
	default:
		return qualityFallbackSample
	}
}
