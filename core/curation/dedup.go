// ABOUTME: Deduplicator collapsing near-duplicate curated products
// ABOUTME: Rejects on exact link, host plus title prefix, or fuzzy title-token overlap

package curation

import (
	"regexp"
	"strings"

	"curapick-app-api/core/domain"
)

// titlePrefixLen is the rune length titles are truncated to for the
// same-host prefix comparison.
const titlePrefixLen = 24

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Deduplicator decides whether a candidate product duplicates one
// already accepted. The overlap threshold is configurable because
// retailer pages repeat the same listing with minor title variation.
type Deduplicator struct {
	overlapThreshold float64
}

// NewDeduplicator creates a deduplicator with the given fuzzy title
// overlap threshold (fraction of the shorter title's token count).
func NewDeduplicator(overlapThreshold float64) *Deduplicator {
	return &Deduplicator{overlapThreshold: overlapThreshold}
}

// Accept reports whether the candidate should be added to the
// accumulated list. It is a pure function of its inputs, so running it
// twice over the same accumulated+candidate set yields the same answer.
func (d *Deduplicator) Accept(accumulated []domain.CuratedProduct, candidate domain.CuratedProduct) bool {
	candTokens := titleTokens(candidate.Title)
	candPrefix := titlePrefix(candidate.Title)

	for _, existing := range accumulated {
		if existing.Link == candidate.Link {
			return false
		}
		if existing.DisplayHost != "" && existing.DisplayHost == candidate.DisplayHost &&
			titlePrefix(existing.Title) == candPrefix {
			return false
		}
		if d.tokenOverlapExceeds(candTokens, titleTokens(existing.Title)) {
			return false
		}
	}
	return true
}

// tokenOverlapExceeds reports whether the shared token count reaches
// the threshold fraction of the shorter title's token count.
func (d *Deduplicator) tokenOverlapExceeds(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	set := make(map[string]struct{}, len(b))
	for _, tok := range b {
		set[tok] = struct{}{}
	}

	common := 0
	seen := make(map[string]struct{}, len(a))
	for _, tok := range a {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, ok := set[tok]; ok {
			common++
		}
	}

	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}
	return float64(common) >= d.overlapThreshold*float64(shorter)
}

// titleTokens splits a title into case-folded alphanumeric tokens with
// punctuation stripped.
func titleTokens(title string) []string {
	return tokenPattern.FindAllString(strings.ToLower(title), -1)
}

// titlePrefix lowercases a title and truncates it to titlePrefixLen runes.
func titlePrefix(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	runes := []rune(lower)
	if len(runes) > titlePrefixLen {
		return string(runes[:titlePrefixLen])
	}
	return lower
}
