package validators

import "strings"

// NormalizePhone strips separators so "+7 (999) 123-45-67" and
// "+79991234567" hit the same unique index.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhoneValid(phone string) bool {
	p := NormalizePhone(phone)

	digits := strings.TrimPrefix(p, "+")
	if len(digits) < 10 || len(digits) > 15 {
		return false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
