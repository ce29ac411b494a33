// Package core contains the business logic for the CuraPick API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
//   - domain: pure domain models (Analysis, SearchHit, CuratedProduct)
//   - analysis: symptom analysis via the upstream language model
//   - curation: the product-result curation pipeline (query strategies,
//     filtering, ranking, deduplication, tiered fallback)
//   - errors: custom error types for better error handling
//   - interfaces: contracts for external dependencies (HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
//   - No external framework dependencies
//   - All external dependencies are injected via interfaces
//   - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "curapick-app-api/core/curation"
//	    "curapick-app-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	registry := curation.DefaultRegistry()
//	searcher := curation.NewSerperClient(deps, apiKey)
//	service := curation.NewService(deps, searcher, registry, opts, 0.7, 800*time.Millisecond)
//
//	result, err := service.CurateProducts(ctx, []string{"비타민C"})
package core
