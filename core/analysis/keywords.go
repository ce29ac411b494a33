// ABOUTME: Keyword extraction from analysis text via the fixed label pattern
// ABOUTME: Falls back to the default keyword triple when extraction yields nothing

package analysis

import (
	"regexp"
	"strings"
)

// keywordLinePattern matches the labeled keyword line the prompt asks
// the model to emit.
var keywordLinePattern = regexp.MustCompile(`(?i)검색 키워드:\s*(.+)`)

// DefaultKeywords is returned when the analysis text carries no usable
// keyword line.
func DefaultKeywords() []string {
	return []string{"건강보조식품", "영양제", "비타민"}
}

// fallbackKeywords accompany the canned fallback analysis.
func fallbackKeywords() []string {
	return []string{"종합비타민", "건강보조식품", "영양제"}
}

// ExtractKeywords pulls the comma-separated keyword list from the first
// matching label line, trimming entries and dropping empties. When no
// line matches or the list is empty the default triple is returned.
func ExtractKeywords(text string) []string {
	match := keywordLinePattern.FindStringSubmatch(text)
	if match == nil {
		return DefaultKeywords()
	}

	parts := strings.Split(match[1], ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}

	if len(keywords) == 0 {
		return DefaultKeywords()
	}
	return keywords
}
