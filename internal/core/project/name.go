package project

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// packageNamePattern is the npm package name grammar, with an optional
// @scope/ prefix.
var packageNamePattern = regexp.MustCompile(`^(?:@[a-z0-9*~-][a-z0-9*._~-]*/)?[a-z0-9~-][a-z0-9._~-]*$`)

// NormalizePackageName turns arbitrary input into a package name candidate:
// trimmed, lowercased, spaces as hyphens, leading dots and underscores
// removed, and every rune outside [a-z0-9~-] replaced by a hyphen.
// NormalizePackageName("My App!!") == "my-app--".
func NormalizePackageName(raw string) string {
	// Casers are stateful, so each call gets its own.
	name := cases.Lower(language.Und).String(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.TrimLeft(name, "._")
	return strings.Map(func(r rune) rune {
		if isPackageNameRune(r) {
			return r
		}
		return '-'
	}, name)
}

func isPackageNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '~'
}

// IsValidPackageName reports whether name satisfies the package naming
// grammar. The empty string is never valid.
func IsValidPackageName(name string) bool {
	return packageNamePattern.MatchString(name)
}
