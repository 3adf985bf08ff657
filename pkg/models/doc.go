// Package models provides the closed set of choices offered by tt.
//
// Every menu the installer shows is backed by one of the string enums in
// this package, so a selection always carries one of the listed values:
//   - [Language]: JavaScript or TypeScript
//   - [Framework]: Vue, Vue2, React, Angular, Svelte
//   - [PackageManager]: npm, yarn, pnpm
//
// Menus are built from the ordered slices returned by [Languages],
// [Frameworks] and [PackageManagers]; the first element is the default.
//
//	sel := models.TemplateSelection{Language: models.LangTypeScript, Framework: models.FrameworkVue}
//	if sel.IsValid() {
//	    fmt.Println(sel) // TypeScript + Vue
//	}
package models
