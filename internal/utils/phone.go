package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// CountryPrefix is the international prefix applied to every stored phone number
const CountryPrefix = "55"

var phonePattern = regexp.MustCompile(`^\d{10,11}$`)

// NormalizePhone validates a phone number and formats it with the
// international prefix, e.g. "11 98765-4321" becomes "+5511987654321"
func NormalizePhone(phone string) (string, error) {
	// Clean the input by removing separators
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code or trunk zero if present
	if strings.HasPrefix(stripped, CountryPrefix) && len(stripped) > 11 {
		stripped = stripped[len(CountryPrefix):]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !phonePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format: %q", phone)
	}

	return "+" + CountryPrefix + stripped, nil
}
