package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"90m", 90 * time.Minute},
		{"3d", 3 * day},
		{"1w2d6h30m", (7*24+2*24+6)*time.Hour + 30*time.Minute},
		{" 2 Hours ", 2 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWindow(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3x", "0h", "1d-", "99999999999w", "15251w", "15000w2000w"} {
		_, err := ParseWindow(in)
		assert.Error(t, err, in)
	}
}

func TestParseWindowLargestAccepted(t *testing.T) {
	got, err := ParseWindow("15250w")
	require.NoError(t, err)
	assert.Equal(t, 15250*7*day, got)
}

func TestFormatWindow(t *testing.T) {
	assert.Equal(t, "1w2d6h30m", FormatWindow((7*24+2*24+6)*time.Hour+30*time.Minute))
	assert.Equal(t, "45s", FormatWindow(45*time.Second))
	assert.Equal(t, "0s", FormatWindow(0))
}

func TestSince(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, Since(now.Add(-time.Hour), 2*time.Hour, now))
	assert.False(t, Since(now.Add(-3*time.Hour), 2*time.Hour, now))
	assert.True(t, Since(now.Add(-1000*time.Hour), 0, now))
}
