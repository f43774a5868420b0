package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	plus := func(d time.Duration) *time.Time {
		tt := base.Add(d)
		return &tt
	}

	tests := []struct {
		name   string
		login  *time.Time
		logout *time.Time
		want   string
	}{
		{"90 minutes", &base, plus(90 * time.Minute), "1h 30m"},
		{"exact hours", &base, plus(2 * time.Hour), "2h 0m"},
		{"under an hour", &base, plus(45 * time.Minute), "0h 45m"},
		{"missing logout", &base, nil, "N/A"},
		{"missing login", nil, plus(time.Hour), "N/A"},
		{"both missing", nil, nil, "N/A"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatDuration(tt.login, tt.logout))
		})
	}
}
