package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// DNI pattern - 8 digits
	DNIPattern = `^\d{8}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	DNI   *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	DNI:   regexp.MustCompile(DNIPattern),
}

// IsValidDNI reports whether s is a well-formed national identity number.
func IsValidDNI(s string) bool {
	return CompiledPatterns.DNI.MatchString(s)
}

// IsValidEmail reports whether s has a plausible email shape.
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}
