package importer

import (
	"attendash/internal/model"
	"attendash/internal/parser"
)

// Result 통합문서 전체 변환 결과
type Result struct {
	Records []model.AttendanceRecord
	Months  []string
	Sheets  []SheetResult
}

// Reduce 모든 시트·행을 순서대로 변환해 레코드를 이어 붙인다 (month = 시트 이름)
func Reduce(sheets []model.Sheet) Result {
	var res Result
	seen := map[string]bool{}

	for _, sheet := range sheets {
		sr := SheetResult{
			SheetName: sheet.Name,
			TotalRows: len(sheet.Rows),
		}

		recognized := parser.HasAnyColumn(sheet.Headers)
		for _, row := range sheet.Rows {
			resolved := parser.ResolveRow(row)
			if resolved.Name == "" {
				sr.SkippedRows++
				continue
			}
			recs := parser.TransformResolved(resolved, sheet.Name)
			sr.RecordCount += len(recs)
			res.Records = append(res.Records, recs...)
		}

		if recognized {
			sr.Status = SheetStatusImported
			if !seen[sheet.Name] {
				seen[sheet.Name] = true
				res.Months = append(res.Months, sheet.Name)
			}
		} else {
			sr.Status = SheetStatusSkipped
			sr.Errors = append(sr.Errors, "근태 컬럼을 찾을 수 없음")
		}
		res.Sheets = append(res.Sheets, sr)
	}

	return res
}
