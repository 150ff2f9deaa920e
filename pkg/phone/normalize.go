package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed when a number has no country prefix.
const DefaultRegion = "US"

// Normalize parses a raw phone number and returns it in E.164 format.
// Unparseable input is returned trimmed but otherwise untouched; lead
// ingestion must not fail over a malformed phone field.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(trimmed, DefaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return trimmed
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
