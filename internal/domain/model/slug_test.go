package model

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
		{"simple", "Hello World", "hello-world"},
		{"accents stripped", "Ética de Datos", "tica-de-datos"},
		{"punctuation collapsed", "AI, Ethics & Society!", "ai-ethics-society"},
		{"leading trailing", "  ¿Privacidad?  ", "privacidad"},
		{"digits kept", "Top 10 Trends 2026", "top-10-trends-2026"},
		{"already slug", "data-ethics", "data-ethics"},
		{"empty", "", ""},
		{"only symbols", "¡¿!?", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("hello-world"))
	assert.True(t, ValidSlug("a"))
	assert.True(t, ValidSlug("post-1755000000000"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("-leading"))
	assert.False(t, ValidSlug("trailing-"))
	assert.False(t, ValidSlug("double--dash"))
	assert.False(t, ValidSlug("Upper-Case"))
}
