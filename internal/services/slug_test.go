package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Acme", "acme"},
		{"spaces become hyphens", "My Startup", "my-startup"},
		{"punctuation collapses", "Acme! Inc.", "acme-inc"},
		{"consecutive separators collapse", "a  --  b", "a-b"},
		{"leading and trailing trimmed", "  Hello World!  ", "hello-world"},
		{"digits kept", "Startup 42", "startup-42"},
		{"uppercase lowered", "CamelCase", "camelcase"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Acme! Inc.", "My Startup", "hello-world", "a  b  c"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "slugify should be idempotent for %q", in)
	}
}
