// Package phone centralizes channel-address normalization and the candidate
// expansion used to match numbers stored under inconsistent historical formats.
package phone

import "strings"

// StripPrefix removes the transport scheme label (e.g. "whatsapp:") from a raw
// channel address. The prefix comparison is case-insensitive.
func StripPrefix(raw, prefix string) string {
	raw = strings.TrimSpace(raw)
	if prefix != "" && len(raw) >= len(prefix) && strings.EqualFold(raw[:len(prefix)], prefix) {
		return raw[len(prefix):]
	}
	return raw
}

// Normalize produces the canonical lookup key for a channel address: transport
// prefix stripped, a leading "+" removed, then at most one leading "0" removed.
func Normalize(raw, prefix string) string {
	digits := strings.TrimPrefix(StripPrefix(raw, prefix), "+")
	return strings.TrimPrefix(digits, "0")
}

// ToInternational converts a raw channel address to the international digit
// form used as the stored canonical variant: prefix and "+" stripped, a single
// leading "0" replaced by the country calling code. Registering every number
// in this one form lets the database's uniqueness constraint catch the same
// phone registered twice under different conventions.
func ToInternational(raw, prefix, countryCode string) string {
	digits := strings.TrimPrefix(StripPrefix(raw, prefix), "+")
	if strings.HasPrefix(digits, "0") {
		return countryCode + digits[1:]
	}
	return digits
}

// Candidates expands a raw channel address into every stored format it may have
// been registered under: the digits as received, the canonical form, and the
// international/local conversions using the configured country calling code.
// Order is preserved and duplicates are removed.
func Candidates(raw, prefix, countryCode string) []string {
	digits := strings.TrimPrefix(StripPrefix(raw, prefix), "+")
	canonical := strings.TrimPrefix(digits, "0")

	candidates := make([]string, 0, 4)
	seen := make(map[string]bool)
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			candidates = append(candidates, s)
		}
	}

	add(digits)
	add(canonical)
	if strings.HasPrefix(canonical, countryCode) {
		// international -> local
		add("0" + canonical[len(countryCode):])
	}
	if strings.HasPrefix(digits, "0") {
		// local -> international
		add(countryCode + digits[1:])
	}

	return candidates
}
