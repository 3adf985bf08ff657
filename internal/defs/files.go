package defs

// Common file names used across the project.
const (
	// PackageJSON marks the installation root and is the manifest
	// stamped with the project name after a template is copied.
	PackageJSON = "package.json"

	// GitDir is the only entry tolerated in an "effectively empty" target.
	GitDir = ".git"

	// GitignorePlaceholder is how templates ship their ignore file, since
	// publishing pipelines drop dot-files.
	GitignorePlaceholder = "_gitignore"

	// Gitignore is the name GitignorePlaceholder is restored to on copy.
	Gitignore = ".gitignore"
)

// Template directory naming.
const (
	// TemplateDirPrefix prefixes every bundled template directory.
	TemplateDirPrefix = "template-"

	// TypeScriptSuffix marks the TypeScript variant of a template.
	TypeScriptSuffix = "-ts"
)

// CurrentDir is the sentinel target meaning "scaffold here".
const CurrentDir = "."
