package catalog

import (
	"strings"

	"github.com/harrylevesque/qrverify/internal/models"
)

// MaskFirstTwo keeps the first two letters and hides the rest behind at
// least four asterisks. Empty input yields "****".
func MaskFirstTwo(value string) string {
	v := []rune(strings.TrimSpace(value))
	if len(v) == 0 {
		return "****"
	}
	n := 2
	if len(v) < n {
		n = len(v)
	}
	hidden := len(v) - 2
	if hidden < 4 {
		hidden = 4
	}
	return string(v[:n]) + strings.Repeat("*", hidden)
}

// MaskPhoneLastTwo shows only the last two digits of a phone number.
func MaskPhoneLastTwo(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if len(digits) > 2 {
		digits = digits[len(digits)-2:]
	}
	return strings.Repeat("*", 6) + digits
}

// MaskOwner applies the display masks to an owner record.
func MaskOwner(m models.ActivationMeta) models.MaskedOwner {
	return models.MaskedOwner{
		FirstName: MaskFirstTwo(m.FirstName),
		LastName:  MaskFirstTwo(m.LastName),
		Phone:     MaskPhoneLastTwo(m.Phone),
	}
}
