package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHour int
		wantErr  bool
	}{
		{name: "with offset keeps local hour", input: "2025-12-15T08:30:00-05:00", wantHour: 8},
		{name: "utc", input: "2025-12-15T22:10:00Z", wantHour: 22},
		{name: "no offset", input: "2025-12-15T14:05:00", wantHour: 14},
		{name: "no seconds", input: "2025-12-15T06:45", wantHour: 6},
		{name: "garbage", input: "tomorrow morning", wantErr: true},
		{name: "date only", input: "2025-12-15", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, got.Hour())
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:05 AM", FormatClock(time.Date(2025, 1, 1, 8, 5, 0, 0, time.UTC)))
	assert.Equal(t, "03:30 PM", FormatClock(time.Date(2025, 1, 1, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, "12:00 AM", FormatClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}
