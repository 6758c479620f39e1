package nameplate

import (
	"regexp"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

var nbspToSpace = runes.Map(func(r rune) rune {
	if r == '\u00a0' {
		return ' '
	}
	return r
})

// SanitizeName removes markup tags and replaces non-breaking spaces so the
// name can be measured and drawn as plain text.
func SanitizeName(name string) string {
	name = tagPattern.ReplaceAllString(name, "")
	out, _, err := transform.String(nbspToSpace, name)
	if err != nil {
		return name
	}
	return out
}
