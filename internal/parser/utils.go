package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText NFC 정규화 + 앞뒤 공백 제거
// macOS 에서 저장된 파일은 한글이 자모 분리(NFD) 상태로 들어온다
func NormalizeText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// StripSpaces 모든 공백 문자 제거
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ContainsAny 키워드 중 하나라도 포함하는지 검사
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
