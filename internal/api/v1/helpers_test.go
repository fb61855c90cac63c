package v1

import "net/url"

func escape(s string) string {
	return url.PathEscape(s)
}
