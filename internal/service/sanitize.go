package service

import (
	"net/url"
	"regexp"
	"strings"
)

// Markdown input sanitization. Content is stored as authored markdown;
// these passes strip the HTML constructs that could smuggle script into
// a rendered page.
var (
	reScriptBlock = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	reEventAttr   = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*[^>\s]+`)
	reJavascript  = regexp.MustCompile(`(?i)javascript:`)
	reDataURL     = regexp.MustCompile(`(?i)data:[^;]+;`)
	reHTMLTag     = regexp.MustCompile(`<[^>]+>`)
	reTagName     = regexp.MustCompile(`^</?\s*([a-zA-Z][a-zA-Z0-9]*)`)
)

// allowedTags are the inline HTML tags permitted inside markdown content.
var allowedTags = map[string]struct{}{
	"strong": {}, "em": {}, "code": {}, "pre": {}, "blockquote": {},
	"ul": {}, "ol": {}, "li": {}, "p": {}, "br": {}, "img": {}, "a": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
}

// SanitizeMarkdown strips script blocks, inline event handlers,
// javascript: URLs, non-image data: URLs, and HTML tags outside a small
// allowlist. Markdown syntax itself passes through untouched.
func SanitizeMarkdown(content string) string {
	out := reScriptBlock.ReplaceAllString(content, "")
	out = reEventAttr.ReplaceAllString(out, "")
	out = reJavascript.ReplaceAllString(out, "")
	out = reDataURL.ReplaceAllStringFunc(out, func(m string) string {
		if strings.HasPrefix(strings.ToLower(m), "data:image/") {
			return m
		}
		return "data:text/plain;"
	})
	out = reHTMLTag.ReplaceAllStringFunc(out, func(m string) string {
		name := reTagName.FindStringSubmatch(m)
		if name == nil {
			return ""
		}
		if _, ok := allowedTags[strings.ToLower(name[1])]; ok {
			return m
		}
		return ""
	})
	return strings.TrimSpace(out)
}

// SanitizeText trims plain-text fields like titles and excerpts, caps
// their length in runes, and strips angle brackets.
func SanitizeText(s string, maxLen int) string {
	out := strings.TrimSpace(s)
	out = strings.NewReplacer("<", "", ">", "").Replace(out)
	runes := []rune(out)
	if len(runes) > maxLen {
		out = string(runes[:maxLen])
	}
	return out
}

// imageExtensions are the accepted cover image file extensions.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

// SanitizeImageURL validates a cover image URL: http(s) only, path must
// end in a known image extension. Returns nil when the URL is unusable.
func SanitizeImageURL(raw string) *string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil
	}
	path := strings.ToLower(parsed.Path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			s := parsed.String()
			return &s
		}
	}
	return nil
}
