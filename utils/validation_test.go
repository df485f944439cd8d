package utils

import (
	"strings"
	"testing"
)

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0722123456", "254722123456"},
		{"0722 123 456", "254722123456"},
		{"254722123456", "254722123456"},
		{"722123456", "254722123456"},
		{"+254 722-123-456", "254722123456"},
		{"0110123456", "254110123456"},
	}

	for _, tc := range tests {
		if got := FormatPhoneNumber(tc.in); got != tc.want {
			t.Errorf("FormatPhoneNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsSafaricomNumber(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"254722123456", true},
		{"254791234567", true},
		{"254110123456", false},
		{"255722123456", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsSafaricomNumber(tc.phone); got != tc.want {
			t.Errorf("IsSafaricomNumber(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"jane@example.com", "a.b@sub.domain.co.ke"}
	invalid := []string{"", "plain", "@nouser.com", "user@", "user@nodot", "a b@example.com"}

	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, want false", e)
		}
	}
}

func TestNewTransactionCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code := NewTransactionCode()
		if len(code) != 10 {
			t.Fatalf("code %q has length %d, want 10", code, len(code))
		}
		if !strings.HasPrefix(code, "QH") {
			t.Fatalf("code %q does not start with QH", code)
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("code %q is not uppercase", code)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("transaction codes do not vary")
	}
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if err := CheckPassword(hash, "hunter22"); err != nil {
		t.Errorf("CheckPassword rejected the right password: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); err == nil {
		t.Error("five character password accepted")
	}
	if err := ValidatePassword("longenough"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}
}
