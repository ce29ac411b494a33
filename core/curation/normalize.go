// ABOUTME: Text normalization for curated product titles and descriptions
// ABOUTME: Strips bracketed review tags and review-word fragments from display text

package curation

import (
	"regexp"
	"strings"
)

var (
	bracketTagPattern = regexp.MustCompile(`\[(?:리뷰|후기|체험|광고|추천)\]`)
	reviewWordPattern = regexp.MustCompile(`리뷰|후기|체험기|사용기`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanTitle strips bracketed review tags and normalizes whitespace.
// An empty title falls back to a keyword-templated default.
func CleanTitle(title, keyword string) string {
	if strings.TrimSpace(title) == "" {
		return keyword + " 관련 제품"
	}
	cleaned := bracketTagPattern.ReplaceAllString(title, "")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return keyword + " 관련 제품"
	}
	return cleaned
}

// CleanDescription removes review-word fragments from a snippet.
// An empty snippet falls back to a fixed default.
func CleanDescription(snippet string) string {
	if strings.TrimSpace(snippet) == "" {
		return "제품 설명이 없습니다."
	}
	cleaned := reviewWordPattern.ReplaceAllString(snippet, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "제품 설명이 없습니다."
	}
	return cleaned
}
