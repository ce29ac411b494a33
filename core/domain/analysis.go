// ABOUTME: Analysis domain model for symptom analysis results
// ABOUTME: Defines the structure returned by the AI analysis service

package domain

// Analysis represents the result of analyzing a user's symptom text.
type Analysis struct {
	// FullAnalysis is the complete explanation text returned by the
	// language model (or the canned fallback text).
	FullAnalysis string

	// Keywords are the product search keywords extracted from the
	// analysis text, at most 5.
	Keywords []string

	// Degraded is true when the upstream model call failed and the
	// canned fallback analysis was substituted.
	Degraded bool
}
