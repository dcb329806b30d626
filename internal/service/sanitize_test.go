package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeMarkdown(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"script block removed",
			"hello <script>alert('x')</script> world",
			"hello  world",
		},
		{
			"script block across lines",
			"a <script type=\"text/javascript\">\nsteal()\n</script> b",
			"a  b",
		},
		{
			"event handler stripped",
			`<img src="x.png" onerror=alert(1)>`,
			`<img src="x.png">`,
		},
		{
			"javascript url neutralized",
			`[link](javascript:alert(1))`,
			`[link](alert(1))`,
		},
		{
			"non-image data url rewritten",
			`<a href="data:text/html;base64,xxx">x</a>`,
			`<a href="data:text/plain;base64,xxx">x</a>`,
		},
		{
			"image data url kept",
			`![x](data:image/png;base64,abc)`,
			`![x](data:image/png;base64,abc)`,
		},
		{
			"disallowed tags dropped",
			`<iframe src="evil"></iframe><strong>bold</strong> <div>x</div>`,
			`<strong>bold</strong> x`,
		},
		{
			"markdown untouched",
			"# Heading\n\n- item\n- **bold** and `code`",
			"# Heading\n\n- item\n- **bold** and `code`",
		},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeMarkdown(tc.in))
		})
	}
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello", SanitizeText("  hello  ", 200))
	assert.Equal(t, "scriptalert(1)/script", SanitizeText("<script>alert(1)</script>", 200))
	assert.Equal(t, "abc", SanitizeText("abcdef", 3))
	assert.Equal(t, "", SanitizeText("   ", 200))
}

func TestSanitizeImageURL(t *testing.T) {
	got := SanitizeImageURL("https://cdn.example.com/cover.webp")
	require.NotNil(t, got)
	assert.Equal(t, "https://cdn.example.com/cover.webp", *got)

	assert.Nil(t, SanitizeImageURL("ftp://example.com/cover.png"))
	assert.Nil(t, SanitizeImageURL("https://example.com/page.html"))
	assert.Nil(t, SanitizeImageURL("javascript:alert(1)"))
	assert.Nil(t, SanitizeImageURL(""))

	upper := SanitizeImageURL("https://example.com/COVER.PNG")
	require.NotNil(t, upper)
}
