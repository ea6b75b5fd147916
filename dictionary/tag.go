package dictionary

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tag identifies a ranked dictionary. Dictionaries get tags in emission
// order; the tag after the last dictionary stands for user-supplied input.
type Tag int

const UserInputsTagName = "USER_INPUTS"

// UserInputsTag returns the synthetic tag following n dictionaries.
func UserInputsTag(n int) Tag {
	return Tag(n)
}

// TagName turns a dictionary name into an enumerator identifier: upper case,
// with every byte outside [A-Z0-9_] replaced by an underscore.
func TagName(name string) string {
	s := cases.Upper(language.Und).String(name)
	var b strings.Builder
	b.Grow(len(s) + 1)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c == '_':
			b.WriteByte(c)
		case c >= '0' && c <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

// TagNames returns the enumerator names for names followed by the user input
// tag.
func TagNames(names []string) []string {
	tags := make([]string, 0, len(names)+1)
	for _, name := range names {
		tags = append(tags, TagName(name))
	}
	return append(tags, UserInputsTagName)
}
