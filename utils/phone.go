package utils

import (
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

// FormatPhoneNumber formats a phone number to a standard format.
// Removes all non-digit characters and ensures it starts with the Czech
// country code (420).
func FormatPhoneNumber(phoneNumber string) string {
	digits := nonDigit.ReplaceAllString(phoneNumber, "")

	// 00420... international dialing form
	digits = strings.TrimPrefix(digits, "00")

	// Bare national number: prepend country code
	if len(digits) == 9 {
		digits = "420" + digits
	}

	return digits
}

// ValidatePhoneNumber checks the guest-entered phone number: after stripping
// spaces it must be an optional +420 prefix followed by at least 9 digits.
func ValidatePhoneNumber(phoneNumber string) bool {
	cleaned := strings.ReplaceAll(phoneNumber, " ", "")
	matched, _ := regexp.MatchString(`^(\+420)?[0-9]{9,}$`, cleaned)
	return matched
}

// NormalizePhoneNumber normalizes phone number for database storage.
func NormalizePhoneNumber(phoneNumber string) string {
	formatted := FormatPhoneNumber(phoneNumber)
	if formatted == "" {
		return ""
	}
	return "+" + formatted
}

// DisplayPhoneNumber formats a stored number for display.
func DisplayPhoneNumber(phoneNumber string) string {
	formatted := FormatPhoneNumber(phoneNumber)
	if len(formatted) == 12 && strings.HasPrefix(formatted, "420") {
		// Format as +420 XXX XXX XXX
		return "+" + formatted[:3] + " " + formatted[3:6] + " " + formatted[6:9] + " " + formatted[9:12]
	}
	return phoneNumber
}
