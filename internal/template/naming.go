package template

import (
	"fmt"

	"github.com/ttcli/tt/internal/defs"
	"github.com/ttcli/tt/pkg/models"
)

// TemplateDirName returns the bundled directory name for sel:
// "template-<framework>" for JavaScript and "template-<framework>-ts" for
// TypeScript, with the framework lowercased.
func TemplateDirName(sel models.TemplateSelection) (string, error) {
	if !sel.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedSelection, sel)
	}

	name := defs.TemplateDirPrefix + sel.Framework.Slug()
	if sel.Language == models.LangTypeScript {
		name += defs.TypeScriptSuffix
	}
	return name, nil
}
