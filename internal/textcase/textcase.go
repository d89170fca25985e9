// Package textcase provides the identifier case and inflection transforms used
// to derive class, table, route and variable names from a module name.
//
// All transforms operate on ASCII and ignore the process locale.
package textcase

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// Studly converts s to StudlyCase: "blog_post" -> "BlogPost".
// Words split on '-', '_' and spaces get their first letter uppercased; the
// rest of each word is kept, so acronyms survive ("APIKeys" stays "APIKeys").
func Studly(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		b.WriteString(ucFirst(w))
	}
	return b.String()
}

// Snake converts s to snake_case: "BlogPost" -> "blog_post".
func Snake(s string) string {
	return strcase.ToSnake(s)
}

// Kebab converts s to kebab-case: "BlogPost" -> "blog-post".
func Kebab(s string) string {
	return strcase.ToKebab(s)
}

// Plural returns the plural form of the last word in s, keeping its case.
func Plural(s string) string {
	if s == "" {
		return s
	}
	return inflection.Plural(s)
}

// Singular returns the singular form of the last word in s, keeping its case.
func Singular(s string) string {
	if s == "" {
		return s
	}
	return inflection.Singular(s)
}

// LcFirst lowercases the first ASCII letter of s.
func LcFirst(s string) string {
	if s == "" {
		return s
	}
	c := s[0]
	if c >= 'A' && c <= 'Z' {
		return string(c+'a'-'A') + s[1:]
	}
	return s
}

func ucFirst(s string) string {
	c := s[0]
	if c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
