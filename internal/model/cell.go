package model

import (
	"strconv"
	"strings"
	"time"
)

// CellKind 셀 원시값 종류
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellDate
)

// CellValue 디코딩된 셀 원시값 (문자열/숫자/날짜)
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64
	Time   time.Time
}

// EmptyCell 빈 셀
func EmptyCell() CellValue { return CellValue{Kind: CellEmpty} }

// StringCell 문자열 셀
func StringCell(s string) CellValue { return CellValue{Kind: CellString, Text: s} }

// NumberCell 숫자 셀 (날짜 일련번호 포함)
func NumberCell(n float64) CellValue { return CellValue{Kind: CellNumber, Number: n} }

// DateCell 네이티브 날짜 셀
func DateCell(t time.Time) CellValue { return CellValue{Kind: CellDate, Time: t} }

// IsBlank 빈 값이거나 공백 문자열
func (v CellValue) IsBlank() bool {
	switch v.Kind {
	case CellEmpty:
		return true
	case CellString:
		return strings.TrimSpace(v.Text) == ""
	}
	return false
}

// String 텍스트로 강제 변환
func (v CellValue) String() string {
	switch v.Kind {
	case CellString:
		return v.Text
	case CellNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case CellDate:
		return v.Time.Format("2006-01-02")
	}
	return ""
}

// Row 헤더 텍스트 → 셀 값
type Row map[string]CellValue

// Sheet 시트 이름과 데이터 행 (시트 하나 = 한 달)
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}
