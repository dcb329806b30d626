//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"regexp"
	"strings"
)

var (
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9]+`)
	slugTrimRe    = regexp.MustCompile(`(^-|-$)`)
	// slugRe validates an externally supplied slug.
	slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Slugify derives a URL slug from a title: lowercase, runs of non-alphanumeric
// characters collapsed to single hyphens, leading/trailing hyphens stripped.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalidRe.ReplaceAllString(s, "-")
	return slugTrimRe.ReplaceAllString(s, "")
}

// ValidSlug reports whether s is a well-formed slug.
func ValidSlug(s string) bool {
	return s != "" && slugRe.MatchString(s)
}
