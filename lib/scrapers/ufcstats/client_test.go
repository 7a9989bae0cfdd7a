package ufcstats_test

import (
	"testing"

	"ufcpipe/lib/scrapers/ufcstats"

	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	base := "http://ufcstats.com"
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.ufcstats.com/event-details/abc", "http://ufcstats.com/event-details/abc"},
		{"http://www.ufcstats.com/event-details/abc", "http://ufcstats.com/event-details/abc"},
		{"https://ufcstats.com/event-details/abc", "http://ufcstats.com/event-details/abc"},
		{"http://ufcstats.com/event-details/abc", "http://ufcstats.com/event-details/abc"},
		{" http://ufcstats.com/fighter-details/x ", "http://ufcstats.com/fighter-details/x"},
		{"", ""},
		{"https://example.com/page", "https://example.com/page"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ufcstats.NormalizeURL(c.in, base), "NormalizeURL(%q)", c.in)
	}
}

func TestCanonicalURL(t *testing.T) {
	canonical := ufcstats.CanonicalURL("https://www.ufcstats.com/event-details/abc/")
	require.Equal(t, "http://ufcstats.com/event-details/abc", canonical)

	// Idempotent.
	require.Equal(t, canonical, ufcstats.CanonicalURL(canonical))
}
