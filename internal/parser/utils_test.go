package parser

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestNormalizeText_ComposesHangul(t *testing.T) {
	t.Parallel()

	decomposed := norm.NFD.String(" 연차 ")
	if decomposed == " 연차 " {
		t.Fatalf("test input should be decomposed")
	}
	if got := NormalizeText(decomposed); got != "연차" {
		t.Fatalf("want 연차 got=%q", got)
	}
}

func TestStripSpaces(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"관내 출장":      "관내출장",
		"전년도\t대체 휴무": "전년도대체휴무",
		" 병가\n":      "병가",
		"":           "",
	}
	for in, want := range cases {
		if got := StripSpaces(in); got != want {
			t.Fatalf("StripSpaces(%q) want=%q got=%q", in, want, got)
		}
	}
}

func TestContainsAny(t *testing.T) {
	t.Parallel()

	if !ContainsAny("오전반차", generalLeaveKeywords) {
		t.Fatalf("반차 should match")
	}
	if ContainsAny("교육", generalLeaveKeywords) {
		t.Fatalf("교육 should not match")
	}
	if ContainsAny("anything", nil) {
		t.Fatalf("nil keywords should not match")
	}
}
