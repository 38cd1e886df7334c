package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperFirst returns s with its first character upper-cased.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst returns s with its first character lower-cased.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// words splits s on '_', '-' and spaces.
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
}

// Title title-cases every word of s and joins them. Letters after the first
// one of a word keep their case. For example:
//
//	user_id   => UserId
//	full-name => FullName
//	avatarURL => AvatarURL
func Title(s string) string {
	// Casers are stateful and not safe for concurrent use.
	caser := cases.Title(language.English, cases.NoLower)
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(caser.String(w))
	}
	return b.String()
}

// Pascal converts a snake_case or kebab-case name to PascalCase.
func Pascal(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(UpperFirst(w))
	}
	return b.String()
}

// Camel converts a snake_case or kebab-case name to camelCase.
func Camel(s string) string {
	return LowerFirst(Pascal(s))
}

// Plural returns the plural form of an object name. Uncountable names get a
// "List" suffix so that singular and plural accessors never collide.
func Plural(name string) string {
	p := inflect.Pluralize(name)
	if p == name {
		p += "List"
	}
	return p
}

// IsIdent reports whether s is a C-family identifier.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r < utf8.RuneSelf && unicode.IsLetter(r):
		case i > 0 && r < utf8.RuneSelf && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
