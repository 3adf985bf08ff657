package models

import "strings"

// Language is the template language variant.
type Language string

const (
	LangJavaScript Language = "JavaScript"
	LangTypeScript Language = "TypeScript"
)

// Languages returns the language menu in display order.
func Languages() []Language {
	return []Language{LangJavaScript, LangTypeScript}
}

// IsValid reports whether l is one of the known languages.
func (l Language) IsValid() bool {
	switch l {
	case LangJavaScript, LangTypeScript:
		return true
	}
	return false
}

// Framework is the UI framework a template is built on.
type Framework string

const (
	FrameworkVue     Framework = "Vue"
	FrameworkVue2    Framework = "Vue2"
	FrameworkReact   Framework = "React"
	FrameworkAngular Framework = "Angular"
	FrameworkSvelte  Framework = "Svelte"
)

// Frameworks returns the framework menu in display order.
func Frameworks() []Framework {
	return []Framework{FrameworkVue, FrameworkVue2, FrameworkReact, FrameworkAngular, FrameworkSvelte}
}

// IsValid reports whether f is one of the known frameworks.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkVue, FrameworkVue2, FrameworkReact, FrameworkAngular, FrameworkSvelte:
		return true
	}
	return false
}

// Slug returns the lowercase form used in template directory names.
func (f Framework) Slug() string {
	return strings.ToLower(string(f))
}

// PackageManager is the tool named in the printed next steps.
// It is never invoked.
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPNPM PackageManager = "pnpm"
)

// PackageManagers returns the package manager menu in display order.
func PackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM}
}

// IsValid reports whether pm is one of the known package managers.
func (pm PackageManager) IsValid() bool {
	switch pm {
	case PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM:
		return true
	}
	return false
}

// InstallCommand returns the dependency install hint, e.g. "npm install".
func (pm PackageManager) InstallCommand() string {
	return string(pm) + " install"
}

// DevCommand returns the dev server hint, e.g. "npm run dev".
func (pm PackageManager) DevCommand() string {
	return string(pm) + " run dev"
}

// TemplateSelection pairs a language with a framework.
type TemplateSelection struct {
	Language  Language
	Framework Framework
}

// IsValid reports whether both halves of the selection are known values.
func (s TemplateSelection) IsValid() bool {
	return s.Language.IsValid() && s.Framework.IsValid()
}

func (s TemplateSelection) String() string {
	return string(s.Language) + " + " + string(s.Framework)
}
