package httphash

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalLocation(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "lowercase scheme and host",
			in:   "HTTPS://ACUS.GOV/vulnerability-disclosure-policy",
			out:  "https://acus.gov/vulnerability-disclosure-policy",
		},
		{
			name: "empty path becomes root",
			in:   "https://example.gov",
			out:  "https://example.gov/",
		},
		{
			name: "remove default https port",
			in:   "https://example.gov:443/a",
			out:  "https://example.gov/a",
		},
		{
			name: "remove default http port",
			in:   "http://example.gov:80/a",
			out:  "http://example.gov/a",
		},
		{
			name: "keep port that is not the scheme default",
			in:   "https://example.gov:80/a",
			out:  "https://example.gov:80/a",
		},
		{
			name: "ipv6 default port",
			in:   "https://[2001:db8::1]:443/a",
			out:  "https://[2001:db8::1]/a",
		},
		{
			name: "drop fragment keep trailing slash and query",
			in:   "https://example.gov/a/?b=2&a=1#top",
			out:  "https://example.gov/a/?b=2&a=1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := url.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.out, canonicalLocation(u))
		})
	}
}

func TestSameLocation(t *testing.T) {
	parse := func(s string) *url.URL {
		u, err := url.Parse(s)
		require.NoError(t, err)

		return u
	}

	require.True(t, sameLocation(
		parse("https://ACUS.GOV/vulnerability-disclosure-policy"),
		parse("https://acus.gov:443/vulnerability-disclosure-policy"),
	))
	require.False(t, sameLocation(
		parse("https://acus.gov/vulnerability-disclosure-policy"),
		parse("https://www.acus.gov/vulnerability-disclosure-policy"),
	))
	require.False(t, sameLocation(
		parse("http://acus.gov/vulnerability-disclosure-policy"),
		parse("https://acus.gov/vulnerability-disclosure-policy"),
	))
	require.False(t, sameLocation(
		parse("https://acus.gov/vulnerability-disclosure-policy"),
		parse("https://acus.gov/vulnerability-disclosure-policy/"),
	))
}
