package utils

import "strings"

func GetStringOrEmpty(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

func GetIntOrZero(i *int) int {
	if i != nil {
		return *i
	}
	return 0
}

// SplitURL drops the query string so request logs stay short.
func SplitURL(url string) string {
	return strings.Split(url, "?")[0]
}
