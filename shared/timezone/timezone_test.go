package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "empty falls back to UTC", zone: "", want: "UTC"},
		{name: "unknown falls back to UTC", zone: "Mars/Olympus_Mons", want: "UTC"},
		{name: "known zone", zone: "UTC", want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, loadLocation(tt.zone).String())
		})
	}
}

func TestTimestamp(t *testing.T) {
	createdAt := time.Date(2024, 3, 9, 7, 30, 15, 123000000, time.FixedZone("WIB", 7*60*60))

	got := Timestamp(createdAt)

	parsed, err := time.Parse(time.RFC3339, got)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(createdAt.Truncate(time.Second)))
	assert.Equal(t, createdAt.In(appLocation()).Format(time.RFC3339), got)
}

func TestNow(t *testing.T) {
	before := time.Now()
	now := Now()

	assert.False(t, now.Before(before.Truncate(time.Second)))
	assert.Equal(t, appLocation(), now.Location())
}
