package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginHost(t *testing.T) {
	assert.Equal(t, "example.com", originHost("https://example.com"))
	assert.Equal(t, "example.com:3000", originHost("http://example.com:3000"))
	assert.Equal(t, "example.com", originHost("example.com"))
	assert.Equal(t, "example.com", originHost("example.com/"))
}

func TestOriginMatches(t *testing.T) {
	cases := []struct {
		pattern string
		host    string
		want    bool
	}{
		{"example.com", "example.com", true},
		{"example.com", "evil.com", false},
		{"*.example.com", "app.example.com", true},
		{"*.example.com", "example.org", false},
		{"localhost:*", "localhost:3000", true},
		{"localhost:*", "notlocalhost:3000", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, originMatches(tc.pattern, tc.host), "%s vs %s", tc.pattern, tc.host)
	}
}
