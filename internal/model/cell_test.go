package model

import (
	"testing"
	"time"
)

func TestCellValue_Constructors(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		in    CellValue
		kind  CellKind
		text  string
		blank bool
	}{
		{EmptyCell(), CellEmpty, "", true},
		{StringCell(" \t"), CellString, " \t", true},
		{StringCell("연차"), CellString, "연차", false},
		{NumberCell(1.5), CellNumber, "1.5", false},
		{NumberCell(0), CellNumber, "0", false},
		{DateCell(d), CellDate, "2024-03-01", false},
	}
	for _, c := range cases {
		if c.in.Kind != c.kind {
			t.Fatalf("%+v: kind want=%v got=%v", c.in, c.kind, c.in.Kind)
		}
		if got := c.in.String(); got != c.text {
			t.Fatalf("%+v: text want=%q got=%q", c.in, c.text, got)
		}
		if got := c.in.IsBlank(); got != c.blank {
			t.Fatalf("%+v: blank want=%v got=%v", c.in, c.blank, got)
		}
	}
}
