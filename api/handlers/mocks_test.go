package handlers

import (
	"context"

	"curapick-app-api/core/domain"
)

// mockAnalysisService is a mock implementation of the AnalysisService interface
type mockAnalysisService struct {
	analyzeFunc func(ctx context.Context, symptoms string) (*domain.Analysis, error)
}

func (m *mockAnalysisService) AnalyzeSymptoms(ctx context.Context, symptoms string) (*domain.Analysis, error) {
	return m.analyzeFunc(ctx, symptoms)
}

// mockCurationService is a mock implementation of the CurationService interface
type mockCurationService struct {
	curateFunc func(ctx context.Context, keywords []string) (*domain.CurationResult, error)
}

func (m *mockCurationService) CurateProducts(ctx context.Context, keywords []string) (*domain.CurationResult, error) {
	return m.curateFunc(ctx, keywords)
}

// nopLogger discards all log calls
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
