// Package sanitize strips characters that must never reach stored aliases or
// rendered markup.
package sanitize

import "strings"

var stripper = strings.NewReplacer(`"`, "", "<", "", ">", "")

// Sanitize removes every `"`, `<` and `>` from text. All other characters keep
// their relative order.
func Sanitize(text string) string {
	return stripper.Replace(text)
}
