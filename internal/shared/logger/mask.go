package logger

import "strings"

// Example: alice123 -> a***
func MaskID(id string) string {
	if id == "" {
		return ""
	}
	return firstRune(id) + "***"
}

// Example: 홍길동 -> 홍**
func MaskName(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}

// Example: 010-1234-5678 -> ***-****-5678
func MaskTel(tel string) string {
	if tel == "" {
		return ""
	}

	digits := 0
	for _, r := range tel {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	// keep the last four digits
	var b strings.Builder
	seen := 0
	for _, r := range tel {
		if r >= '0' && r <= '9' {
			seen++
			if seen <= digits-4 {
				b.WriteRune('*')
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
