package analysis

import (
	"reflect"
	"testing"
)

func TestExtractKeywords_LabeledLine(t *testing.T) {
	text := `1. 예상 질환: 감기
2. 주요 증상 분석: 목이 붓고 기침이 동반됩니다.
5. 검색 키워드: 비타민C, 아연, 프로폴리스`

	got := ExtractKeywords(text)
	want := []string{"비타민C", "아연", "프로폴리스"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords() = %v, want %v", got, want)
	}
}

func TestExtractKeywords_TrimsAndDropsEmptyEntries(t *testing.T) {
	got := ExtractKeywords("검색 키워드:  비타민C , , 아연 ,")
	want := []string{"비타민C", "아연"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords() = %v, want %v", got, want)
	}
}

func TestExtractKeywords_NoLabelReturnsDefaults(t *testing.T) {
	got := ExtractKeywords("증상에 대한 설명만 있는 텍스트입니다.")
	if !reflect.DeepEqual(got, DefaultKeywords()) {
		t.Errorf("ExtractKeywords() = %v, want default triple", got)
	}
}

func TestExtractKeywords_EmptyListReturnsDefaults(t *testing.T) {
	got := ExtractKeywords("검색 키워드:  ,  , ")
	if !reflect.DeepEqual(got, DefaultKeywords()) {
		t.Errorf("ExtractKeywords() = %v, want default triple", got)
	}
}

func TestDefaultKeywords_FreshSliceEachCall(t *testing.T) {
	first := DefaultKeywords()
	first[0] = "변조된값"
	if DefaultKeywords()[0] != "건강보조식품" {
		t.Error("DefaultKeywords should not share backing storage across calls")
	}
}
