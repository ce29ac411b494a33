// ABOUTME: Analysis service turning symptom text into a health explanation and keywords
// ABOUTME: Calls the Groq chat completion API and degrades to a canned response on failure

package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"curapick-app-api/core/domain"
	coreerrors "curapick-app-api/core/errors"
	"curapick-app-api/core/interfaces"
)

const (
	groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	groqModel    = "llama3-8b-8192"

	// minSymptomLength is the minimum trimmed symptom length in runes
	minSymptomLength = 3

	// maxKeywords caps the keywords returned to the client
	maxKeywords = 5
)

// systemPrompt constrains the model's persona, tone and disclaimers.
const systemPrompt = "당신은 건강 정보를 제공하는 AI 어시스턴트 '큐라픽'입니다. 사용자의 증상에 대해 자세한 진단을 내리세요. 항상 답변 끝에 자신의 진단은 정확하지 않은 정보를 포함할 수 있으며, 전문가의 상담을 권합니다. 한국어로 친근하고 이해하기 쉽게 답변하세요. 마크다운을 사용하지 않고 답변하세요. 사용자가 증상이 아닌 다른 메시지를 입력하였을 경우, 증상을 입력해달라고 요구하세요."

// userPromptTemplate enumerates the expected answer sections, including
// the keyword line the extractor looks for.
const userPromptTemplate = `다음 증상을 분석하여 가능한 질환과 도움이 될 수 있는 성분을 추천해주세요.

증상: %s

다음 형식으로 답변해주세요:
1. 예상 질환: [질환명]
2. 주요 증상 분석: [증상에 대한 자세한 설명]
3. 추천 성분: [성분1, 성분2, 성분3]
4. 생활 습관 권장사항: [일상에서 도움이 될 수 있는 방법들]
5. 검색 키워드: [제품 검색용 키워드들을 쉼표로 구분]

반드시 다음 사항을 포함하세요:
- 이는 의학적 진단이 아닌 일반적인 건강 정보임을 명시
- 지속적인 증상이나 심각한 경우 전문의 상담을 권함
- 개인차가 있을 수 있음을 안내`

// Service handles symptom analysis operations.
type Service struct {
	deps     interfaces.Dependencies
	apiKey   string
	endpoint string
}

// NewService creates an analysis service. An empty apiKey enables demo
// mode: every request returns the canned fallback analysis.
func NewService(deps interfaces.Dependencies, apiKey string) *Service {
	return &Service{
		deps:     deps,
		apiKey:   apiKey,
		endpoint: groqEndpoint,
	}
}

// chatRequest is the Groq chat completion request body.
type chatRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	Temperature      float64       `json:"temperature"`
	MaxTokens        int           `json:"max_tokens"`
	TopP             float64       `json:"top_p"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
	PresencePenalty  float64       `json:"presence_penalty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the Groq response the service consumes.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// validateSymptoms checks the symptom text is present and long enough.
func (s *Service) validateSymptoms(symptoms string) error {
	if utf8.RuneCountInString(strings.TrimSpace(symptoms)) < minSymptomLength {
		return &coreerrors.ValidationError{Field: "symptoms", Message: "symptom text too short"}
	}
	return nil
}

// AnalyzeSymptoms produces the explanation text and search keywords for
// one symptom description. Upstream failures degrade to the canned
// fallback analysis; only invalid input returns an error.
func (s *Service) AnalyzeSymptoms(ctx context.Context, symptoms string) (*domain.Analysis, error) {
	if err := s.validateSymptoms(symptoms); err != nil {
		return nil, err
	}

	if s.apiKey == "" {
		return demoAnalysis(symptoms), nil
	}

	text, err := s.callGroq(ctx, symptoms)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Analysis call failed, returning canned fallback", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return fallbackAnalysis(symptoms), nil
	}

	keywords := ExtractKeywords(text)
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return &domain.Analysis{
		FullAnalysis: text,
		Keywords:     keywords,
	}, nil
}

// callGroq issues the chat completion request and returns the raw
// explanation text.
func (s *Service) callGroq(ctx context.Context, symptoms string) (string, error) {
	if s.deps.HTTPClient == nil {
		return "", fmt.Errorf("HTTP client not configured")
	}

	payload, err := json.Marshal(chatRequest{
		Model: groqModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptTemplate, symptoms)},
		},
		Temperature: 0.7,
		MaxTokens:   1500,
		TopP:        1,
	})
	if err != nil {
		return "", coreerrors.WrapError(err, "failed to encode analysis request")
	}

	headers := map[string]string{"Authorization": "Bearer " + s.apiKey}
	resp, err := s.deps.HTTPClient.Post(ctx, s.endpoint, headers, bytes.NewReader(payload))
	if err != nil {
		return "", coreerrors.WrapError(err, "analysis call failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "analysis request rejected",
			API:        "groq",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", coreerrors.WrapError(err, "failed to read analysis response")
	}

	var apiResponse chatResponse
	if err := json.Unmarshal(bodyBytes, &apiResponse); err != nil {
		return "", coreerrors.WrapError(err, "failed to parse analysis response")
	}

	if len(apiResponse.Choices) == 0 || apiResponse.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("analysis response contained no content")
	}

	return apiResponse.Choices[0].Message.Content, nil
}
