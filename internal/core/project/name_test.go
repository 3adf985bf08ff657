package project

import (
	"strings"
	"testing"
)

func TestNormalizePackageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"spaces_and_bangs", "My App!!", "my-app--"},
		{"already_valid", "my-app", "my-app"},
		{"surrounding_whitespace", "  demo  ", "demo"},
		{"leading_dots", "..hidden", "hidden"},
		{"leading_underscores_and_dots", "_._private", "private"},
		{"inner_dot_replaced", "a.b_c", "a-b-c"},
		{"tilde_kept", "~tools", "~tools"},
		{"scope_chars_replaced", "@scope/pkg", "-scope-pkg"},
		{"unicode_letters", "Café", "caf-"},
		{"tab_inside", "a\tb", "a-b"},
		{"empty", "", ""},
		{"only_dots", "...", ""},
		{"digits", "App2024", "app2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizePackageName(tt.raw); got != tt.want {
				t.Errorf("NormalizePackageName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizePackageName_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"My App!!", "  ..Weird__Name  ", "@scope/Pkg.Name", "ÄÖÜ ß", "日本語 プロジェクト",
		"", " ", "___", "a b c", "x\xffy", "İstanbul", "--already--", "~~~",
	}
	for _, in := range inputs {
		once := NormalizePackageName(in)
		twice := NormalizePackageName(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizePackageName_OutputIsValidUnlessEmpty(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"My App!!", "  ..Weird__Name  ", "@scope/Pkg.Name", "ÄÖÜ ß", "日本語",
		"...", "_", "x\xffy", "hello world", "CamelCase", "0day",
	}
	for _, in := range inputs {
		out := NormalizePackageName(in)
		if out == "" {
			continue
		}
		if !IsValidPackageName(out) {
			t.Errorf("NormalizePackageName(%q) = %q fails validation", in, out)
		}
		if strings.ContainsAny(out, " ._@/") {
			t.Errorf("NormalizePackageName(%q) = %q contains forbidden characters", in, out)
		}
	}
}

func TestIsValidPackageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"my-app", true},
		{"my-app--", true},
		{"app.js", true},
		{"a_b", true},
		{"~home", true},
		{"-dash", true},
		{"123", true},
		{"@scope/name", true},
		{"@*/name", true},
		{"@my.scope/pkg_name", true},
		{"", false},
		{"My-App", false},
		{".hidden", false},
		{"_private", false},
		{"has space", false},
		{"@scope/", false},
		{"@/name", false},
		{"@scope/*name", false},
		{"a/b", false},
		{"@scope/name/extra", false},
		{"emoji😀", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValidPackageName(tt.name); got != tt.want {
				t.Errorf("IsValidPackageName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
