package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"attendash/internal/model"
)

// ErrDecode 파일을 통합문서로 읽을 수 없음
var ErrDecode = errors.New("decode workbook")

// Format 통합문서 형식
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFormat 파일 시그니처 우선, 없으면 확장자로 판단
func DetectFormat(data []byte, filename string) Format {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX
	case bytes.HasPrefix(data, oleMagic):
		return FormatXLS
	}
	if strings.EqualFold(filepath.Ext(filename), ".xls") {
		return FormatXLS
	}
	return FormatXLSX
}

// Decode 통합문서 바이트 → 시트별 (헤더 → 셀) 행 목록
func Decode(r io.Reader, filename string) ([]model.Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrDecode, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrDecode)
	}

	if DetectFormat(data, filename) == FormatXLS {
		return decodeXLS(data)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()
	return DecodeFile(f)
}

// DecodeFile 이미 열린 excelize 통합문서 디코딩
func DecodeFile(f *excelize.File) ([]model.Sheet, error) {
	sheetList := f.GetSheetList()
	sheets := make([]model.Sheet, 0, len(sheetList))
	for _, name := range sheetList {
		sheet, err := decodeXLSXSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", ErrDecode, name, err)
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func decodeXLSXSheet(f *excelize.File, name string) (model.Sheet, error) {
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return model.Sheet{}, err
	}
	sheet := model.Sheet{Name: name}
	if len(rows) == 0 {
		return sheet, nil
	}

	sheet.Headers = normalizeHeaders(rows[0])
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		raw := rows[rowIdx]
		row := make(model.Row, len(sheet.Headers))
		for col, header := range sheet.Headers {
			if header == "" {
				continue
			}
			if _, dup := row[header]; dup {
				continue
			}
			if col >= len(raw) {
				row[header] = model.EmptyCell()
				continue
			}
			row[header] = xlsxCell(f, name, col, rowIdx, raw[col])
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

// xlsxCell 셀 형식에 따라 문자열/숫자 구분
func xlsxCell(f *excelize.File, sheet string, col, rowIdx int, raw string) model.CellValue {
	if raw == "" {
		return model.EmptyCell()
	}
	axis, err := excelize.CoordinatesToCellName(col+1, rowIdx+1)
	if err != nil {
		return model.StringCell(raw)
	}
	typ, err := f.GetCellType(sheet, axis)
	if err != nil {
		return model.StringCell(raw)
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeBool, excelize.CellTypeError:
		return model.StringCell(raw)
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return model.NumberCell(n)
	}
	return model.StringCell(raw)
}

func decodeXLS(data []byte) ([]model.Sheet, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: xls: %v", ErrDecode, err)
	}

	var sheets []model.Sheet
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		sheets = append(sheets, decodeXLSSheet(ws))
	}
	return sheets, nil
}

func decodeXLSSheet(ws *xls.WorkSheet) model.Sheet {
	sheet := model.Sheet{Name: ws.Name}
	header := ws.Row(0)
	if header == nil {
		return sheet
	}

	headers := make([]string, header.LastCol())
	for c := range headers {
		headers[c] = header.Col(c)
	}
	sheet.Headers = normalizeHeaders(headers)

	for i := 1; i <= int(ws.MaxRow); i++ {
		r := ws.Row(i)
		row := make(model.Row, len(sheet.Headers))
		for col, h := range sheet.Headers {
			if h == "" {
				continue
			}
			if _, dup := row[h]; dup {
				continue
			}
			if r == nil {
				row[h] = model.EmptyCell()
				continue
			}
			row[h] = textCell(r.Col(col))
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

// textCell 서식 문자열만 있는 형식(xls)에서 숫자처럼 보이면 숫자로
func textCell(raw string) model.CellValue {
	if strings.TrimSpace(raw) == "" {
		return model.EmptyCell()
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return model.NumberCell(n)
	}
	return model.StringCell(raw)
}

func normalizeHeaders(raw []string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		out[i] = strings.TrimSpace(norm.NFC.String(h))
	}
	return out
}
