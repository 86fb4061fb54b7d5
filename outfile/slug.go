// Package outfile derives collision-free output filenames for synthesized
// audio clips.
package outfile

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	nonSlugRegex  = regexp.MustCompile(`[^a-z0-9.-]`)
	dashRunRegex  = regexp.MustCompile(`-+`)
	nonVoiceRegex = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
)

// Slugify normalizes text to a filesystem-friendly slug: lowercase, every
// character outside [a-z0-9.-] replaced with a hyphen, hyphen runs collapsed,
// leading and trailing hyphens trimmed. Idempotent.
func Slugify(text string) string {
	slug := nonSlugRegex.ReplaceAllString(strings.ToLower(text), "-")
	slug = dashRunRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SanitizeVoice replaces every character of a voice name outside
// [A-Za-z0-9\s] with an underscore.
func SanitizeVoice(name string) string {
	return nonVoiceRegex.ReplaceAllString(name, "_")
}

// FilePrefix derives a short slug from an input file path: the base name
// without extension, slugified and truncated to 10 characters.
func FilePrefix(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	slug := Slugify(base)
	if len(slug) > 10 {
		slug = slug[:10]
	}
	return slug
}
