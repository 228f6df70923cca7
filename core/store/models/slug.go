package models

import "regexp"

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Slug replaces every run of non-word characters with a single dash. Letters
// and digits of any script count as word characters.
func Slug(name string) string {
	return nonWord.ReplaceAllString(name, "-")
}
