package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already e164", "+14155550123", "+14155550123"},
		{"us number with formatting", "(415) 555-0123", "+14155550123"},
		{"spaces and country code", "+1 415 555 0123", "+14155550123"},
		{"international number", "+52 55 1234 5678", "+525512345678"},
		{"garbage passes through trimmed", "  not a number  ", "not a number"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
