package director

import (
	"regexp"
	"strings"
)

// directivePattern matches the first bracketed token in assistant output.
var directivePattern = regexp.MustCompile(`\[(.*?)\]`)

// ExtractDirective scans assistant text for an embedded scene directive: the
// first pair of square brackets. The enclosed text is a candidate scene
// name; whether it names a real scene is the remote's concern, not ours.
// Texts with no brackets, or with only blank bracket contents, yield no
// candidate.
func ExtractDirective(text string) (string, bool) {
	match := directivePattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	candidate := strings.TrimSpace(match[1])
	if candidate == "" {
		return "", false
	}
	return candidate, true
}
