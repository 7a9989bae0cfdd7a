package ufcstats_test

import (
	"path/filepath"
	"regexp"
	"testing"

	"ufcpipe/lib/scrapers/ufcstats"

	"github.com/stretchr/testify/require"
)

func TestInferSnapshotFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"data/raw/event_details__ufcstats__2026-08-25.csv", "2026-08-25"},
		{filepath.Join("2025-01-01", "event_details.csv"), ""},
		{"event_details.csv", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ufcstats.InferSnapshotFromPath(c.path), "path %q", c.path)
	}
}

func TestResolveSnapshot(t *testing.T) {
	require.Equal(t, "2024-01-02", ufcstats.ResolveSnapshot("2024-01-02", "x__ufcstats__2023-01-01.csv"))
	require.Equal(t, "2023-01-01", ufcstats.ResolveSnapshot("", "plain.csv", "x__ufcstats__2023-01-01.csv"))

	// No override, no dated input: today's UTC date.
	require.Regexp(t, regexp.MustCompile(`^20\d{2}-\d{2}-\d{2}$`), ufcstats.ResolveSnapshot(""))
}

func TestSnapshotFilename(t *testing.T) {
	require.Equal(t,
		"fight_details__ufcstats__2026-08-25.csv",
		ufcstats.SnapshotFilename("fight_details", "2026-08-25"))
}
