package exercises

import (
	"strings"
	"unicode"
)

// Slugify turns a display name (or a navigation parameter) into a catalog slug:
// lower case, with every run of spaces, underscores and punctuation collapsed into a single hyphen.
//
//	"Push-ups"     -> "push-ups"
//	" Bicep Curls" -> "bicep-curls"
//	"push_ups"     -> "push-ups"
func Slugify(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return sb.String()
}
