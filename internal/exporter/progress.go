package exporter

// Progress 월 단위 내보내기 진행 상황
type Progress struct {
	Done  int    // 작성이 끝난 월 수
	Total int    // 내보낼 월 수
	Month string // 방금 끝난 월 (시작 알림은 빈 값)
}

// Percent 0~100 진행률
func (p Progress) Percent() int {
	if p.Total <= 0 || p.Done >= p.Total {
		return 100
	}
	return p.Done * 100 / p.Total
}

// Finished 모든 월 작성 완료
func (p Progress) Finished() bool {
	return p.Done >= p.Total
}

func notify(fn func(Progress), done, total int, month string) {
	if fn != nil {
		fn(Progress{Done: done, Total: total, Month: month})
	}
}
