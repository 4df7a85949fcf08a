// Package email recovers representative addresses from their obfuscated
// storage form and checks addresses against the structural pattern used
// everywhere in the service.
package email

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	atPlaceholder  = "[at]"
	dotPlaceholder = "[dot]"
)

var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Valid reports whether addr matches local@domain.tld with a 2+ letter top-level segment.
func Valid(addr string) bool {
	return addressPattern.MatchString(addr)
}

// Recover decodes an obfuscated address: placeholders are substituted, the
// whole string is reversed, and the result is validated. The reversal is
// unconditional; input that was not stored reversed goes through the same
// pipeline and is normally rejected by validation.
func Recover(obfuscated string) (string, bool) {
	if obfuscated == "" {
		return "", false
	}

	decoded := strings.ReplaceAll(obfuscated, atPlaceholder, "@")
	decoded = strings.ReplaceAll(decoded, dotPlaceholder, ".")
	decoded = reverse(decoded)

	if !Valid(decoded) {
		return "", false
	}
	return decoded, true
}

// Obfuscate produces the storage form that Recover reverses.
func Obfuscate(addr string) string {
	reversed := reverse(addr)
	reversed = strings.ReplaceAll(reversed, "@", atPlaceholder)
	return strings.ReplaceAll(reversed, ".", dotPlaceholder)
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// DeriveNameFromEmail guesses a display name from the local part of an address.
func DeriveNameFromEmail(email string) (string, string) {
	localPart := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "Unknown", "Unknown"
	}

	first := capitalize(parts[0])
	last := "Unknown"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}

	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
