package util

import (
	"os/exec"
	"runtime"
)

// browserCommands OS 별 브라우저 실행 후보 (앞쪽 우선)
var browserCommands = map[string][][]string{
	"windows": {
		{"rundll32", "url.dll,FileProtocolHandler"},
		{"explorer"},
	},
	"darwin": {
		{"open"},
	},
	"linux": {
		{"xdg-open"},
		{"sensible-browser"},
		{"google-chrome"},
		{"firefox"},
		{"chromium-browser"},
	},
}

// BrowserCandidates 현재 OS 의 실행 후보 목록 (알 수 없는 OS 는 linux 후보)
func BrowserCandidates(goos string) [][]string {
	if c, ok := browserCommands[goos]; ok {
		return c
	}
	return browserCommands["linux"]
}

// OpenBrowser 기본 브라우저로 url 열기, 후보를 차례로 시도
func OpenBrowser(url string) error {
	var lastErr error
	for _, c := range BrowserCandidates(runtime.GOOS) {
		args := append(append([]string(nil), c[1:]...), url)
		if err := exec.Command(c[0], args...).Start(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
