package utils

import (
	"strings"

	"github.com/google/uuid"
)

func IsValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1 && !strings.ContainsAny(email, " \t")
}

// FormatPhoneNumber normalizes a Kenyan phone number to its 254-prefixed
// digit form: "0722 123 456" and "722123456" both become "254722123456".
func FormatPhoneNumber(value string) string {
	var b strings.Builder
	for _, c := range value {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "0"):
		return "254" + digits[1:]
	case strings.HasPrefix(digits, "254"):
		return digits
	case strings.HasPrefix(digits, "7"):
		return "254" + digits
	}
	return digits
}

// IsSafaricomNumber reports whether a normalized number belongs to a prefix
// the mock M-Pesa flow accepts.
func IsSafaricomNumber(phone string) bool {
	safaricomPrefixes := []string{"2547", "25470", "25471", "25472", "25479"}
	for _, prefix := range safaricomPrefixes {
		if strings.HasPrefix(phone, prefix) {
			return true
		}
	}
	return false
}

// NewTransactionCode mints an M-Pesa style confirmation reference, e.g.
// "QH1A2B3C4D". The code is generated client side; no payment network is
// consulted.
func NewTransactionCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "QH" + raw[:8]
}
