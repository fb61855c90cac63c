package parser

import (
	"regexp"
	"strings"
)

var (
	entryMarkerRe   = regexp.MustCompile(`^종별\s*[:：]\s*(.+)$`)
	durationFieldRe = regexp.MustCompile(`^일수/시간\s*[:：]\s*(.+)$`)
	fromFieldRe     = regexp.MustCompile(`^부터\s*[:：]`)
	toFieldRe       = regexp.MustCompile(`^까지\s*[:：]`)

	lineBreakReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Entry 셀 내 "종별:" 단위 하위 항목
type Entry struct {
	Label        string `json:"label"`
	DurationText string `json:"durationText,omitempty"` // 휴가관리 "일수/시간:" 값
	From         string `json:"from,omitempty"`         // 출장관리 "부터:" 줄 전체
	To           string `json:"to,omitempty"`           // 출장관리 "까지:" 줄 전체
}

// SplitEntries 셀 텍스트를 하위 항목 목록으로 분리
//
// "종별:" 이 한 번도 없으면 전체 텍스트를 라벨로 하는 항목 1개를 반환한다.
// 빈 셀이면 nil.
func SplitEntries(text string) []Entry {
	normalized := NormalizeText(text)
	lines := splitLines(normalized)
	if len(lines) == 0 {
		return nil
	}

	var (
		entries []Entry
		current *Entry
	)
	for _, line := range lines {
		if m := entryMarkerRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &Entry{Label: strings.TrimSpace(m[1])}
			continue
		}
		if current == nil {
			continue
		}
		switch {
		case durationFieldRe.MatchString(line):
			current.DurationText = strings.TrimSpace(durationFieldRe.FindStringSubmatch(line)[1])
		case fromFieldRe.MatchString(line):
			current.From = line
		case toFieldRe.MatchString(line):
			current.To = line
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}

	if len(entries) == 0 {
		return []Entry{{Label: normalized}}
	}
	return entries
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	raw := strings.Split(lineBreakReplacer.Replace(text), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
