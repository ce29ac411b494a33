// ABOUTME: Canned analyses used when the upstream model is unavailable
// ABOUTME: Separate Korean bodies for the unconfigured (demo) and error paths

package analysis

import (
	"fmt"

	"curapick-app-api/core/domain"
)

// fallbackAnalysisTemplate is the canned explanation substituted when a
// model call fails. The symptom text is echoed back so the client can
// still render a personalized card.
const fallbackAnalysisTemplate = `<strong>증상 분석 결과</strong><br><br>
입력하신 증상: %s<br><br>
죄송합니다. 현재 AI 분석 서비스에 일시적인 문제가 발생했습니다.<br>
일반적인 건강 관리를 위해 다음과 같은 방법들을 권장드립니다:<br><br>
• 충분한 수면과 휴식<br>
• 균형 잡힌 영양 섭취<br>
• 적절한 운동<br>
• 스트레스 관리<br><br>
<strong>⚠️ 중요:</strong> 지속적이거나 심각한 증상의 경우 반드시 전문의와 상담하시기 바랍니다.`

// demoAnalysisTemplate is the body served when no API key is
// configured. Same guidance, without the apology sentence the error
// path carries.
const demoAnalysisTemplate = `<strong>증상 분석 결과</strong><br><br>
입력하신 증상: %s<br><br>
현재 AI 분석 서비스에 일시적인 문제가 발생했습니다.<br>
일반적인 건강 관리를 위해 다음과 같은 방법들을 권장드립니다:<br><br>
• 충분한 수면과 휴식<br>
• 균형 잡힌 영양 섭취<br>
• 적절한 운동<br>
• 스트레스 관리<br><br>
<strong>⚠️ 중요:</strong> 지속적이거나 심각한 증상의 경우 반드시 전문의와 상담하시기 바랍니다.`

// fallbackAnalysis builds the degraded analysis for one symptom input.
func fallbackAnalysis(symptoms string) *domain.Analysis {
	return &domain.Analysis{
		FullAnalysis: fmt.Sprintf(fallbackAnalysisTemplate, symptoms),
		Keywords:     fallbackKeywords(),
		Degraded:     true,
	}
}

// demoAnalysis builds the canned analysis for demo mode.
func demoAnalysis(symptoms string) *domain.Analysis {
	return &domain.Analysis{
		FullAnalysis: fmt.Sprintf(demoAnalysisTemplate, symptoms),
		Keywords:     fallbackKeywords(),
		Degraded:     true,
	}
}
