package utils

import "strings"

// NormalizePlate brings a license plate to its canonical form:
// surrounding whitespace removed, letters uppercased. Every write path
// (manual create, manual update, bulk import) stores plates in this form
// so uniqueness comparisons are case and whitespace insensitive.
func NormalizePlate(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
