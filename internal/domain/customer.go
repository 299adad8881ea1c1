package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// CustomerName имя клиента
type CustomerName struct {
	value string
}

const customerNameMaxLength = 100

// NewCustomerName валидирует имя клиента
func NewCustomerName(s string) (CustomerName, error) {
	if s == "" || len([]rune(s)) > customerNameMaxLength {
		return CustomerName{}, fmt.Errorf("%w: customer name length must be 1..%d", ErrValue, customerNameMaxLength)
	}
	if strings.TrimSpace(s) == "" {
		return CustomerName{}, fmt.Errorf("%w: customer name must not be blank", ErrValue)
	}
	return CustomerName{value: s}, nil
}

func (n CustomerName) String() string { return n.value }

// PhoneNumber телефон клиента.
// Принимаются только японские номера; внутреннее представление canonical: +81 + цифры.
type PhoneNumber struct {
	value string
}

var (
	phoneCanonicalPattern = regexp.MustCompile(`^\+81\d{9,10}$`)
	phoneMobilePattern    = regexp.MustCompile(`^(090|080|070|060|050)\d{8}$`)
	phoneDigitsPattern    = regexp.MustCompile(`^\d+$`)
	phoneStripPattern     = regexp.MustCompile(`[()\s-]|　`)
)

// NewPhoneNumber нормализует вход к canonical форме и валидирует его.
// Примеры входа: "090-1234-5678", "+81 90 1234 5678", "(03)1234-5678".
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	cleaned := phoneStripPattern.ReplaceAllString(strings.TrimSpace(raw), "")

	var canonical string
	switch {
	case strings.HasPrefix(cleaned, "+"):
		if !strings.HasPrefix(cleaned, "+81") {
			return PhoneNumber{}, fmt.Errorf("%w: only Japanese phone numbers are supported", ErrValue)
		}
		// +81(0)90... -> +8190...
		canonical = "+81" + strings.TrimPrefix(strings.TrimPrefix(cleaned, "+81"), "0")
	case phoneDigitsPattern.MatchString(cleaned) && strings.HasPrefix(cleaned, "0"):
		canonical = "+81" + cleaned[1:]
	default:
		return PhoneNumber{}, fmt.Errorf("%w: malformed phone number %q", ErrFormat, raw)
	}

	if !phoneCanonicalPattern.MatchString(canonical) {
		return PhoneNumber{}, fmt.Errorf("%w: malformed phone number %q", ErrFormat, raw)
	}

	return PhoneNumber{value: canonical}, nil
}

// String canonical форма (+81XXXXXXXXXX)
func (p PhoneNumber) String() string { return p.value }

// Display отображение для UI: мобильные с дефисами, остальные - просто цифры
func (p PhoneNumber) Display() string {
	domestic := "0" + strings.TrimPrefix(p.value, "+81")
	if phoneMobilePattern.MatchString(domestic) {
		// 09012345678 -> 090-1234-5678
		return domestic[:3] + "-" + domestic[3:7] + "-" + domestic[7:]
	}
	return domestic
}
