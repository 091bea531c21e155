package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := map[time.Duration]string{
		10 * time.Second:     "just now",
		time.Minute:          "1 minute ago",
		45 * time.Minute:     "45 minutes ago",
		2 * time.Hour:        "2 hours ago",
		26 * time.Hour:       "1 day ago",
		10 * 24 * time.Hour:  "10 days ago",
		65 * 24 * time.Hour:  "2 months ago",
		800 * 24 * time.Hour: "2 years ago",
		-time.Hour:           "just now",
	}
	for ago, want := range cases {
		require.Equal(t, want, RelativeTime(now.Add(-ago), now), ago.String())
	}
}

func TestBytes(t *testing.T) {
	require.Equal(t, "0 B", Bytes(0))
	require.Equal(t, "512 B", Bytes(512))
	require.Equal(t, "1.0 KB", Bytes(1024))
	require.Equal(t, "1.5 KB", Bytes(1536))
	require.Equal(t, "5.0 MB", Bytes(5<<20))
	require.Equal(t, "2.0 GB", Bytes(2<<30))
}

func TestGrowth(t *testing.T) {
	require.Equal(t, 0.0, Growth(0, 0))
	require.Equal(t, 100.0, Growth(3, 0))
	require.Equal(t, 50.0, Growth(15, 10))
	require.Equal(t, -50.0, Growth(5, 10))
	require.Equal(t, 33.3, Growth(4, 3))
}
