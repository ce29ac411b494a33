// ABOUTME: JSON response helpers shared by the API handlers
// ABOUTME: Encodes payloads and Korean-language error bodies with correct headers

package handlers

import (
	"encoding/json"
	"net/http"
)

// Client-facing Korean error messages, part of the wire contract.
const (
	msgMethodNotAllowed = "허용되지 않은 메소드입니다"
	msgSymptomsTooShort = "증상을 더 자세히 입력해주세요."
	msgKeywordsRequired = "검색 키워드가 필요합니다."
	msgSearchFailed     = "제품 검색 중 오류가 발생했습니다."
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a {"error": message} body with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// MethodNotAllowed is the router-level handler for requests with an
// unsupported method on a known path.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
