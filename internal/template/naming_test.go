package template

import (
	"errors"
	"testing"

	"github.com/ttcli/tt/pkg/models"
)

func TestTemplateDirName(t *testing.T) {
	tests := []struct {
		lang models.Language
		fw   models.Framework
		want string
	}{
		{models.LangTypeScript, models.FrameworkVue, "template-vue-ts"},
		{models.LangJavaScript, models.FrameworkReact, "template-react"},
		{models.LangJavaScript, models.FrameworkVue2, "template-vue2"},
		{models.LangTypeScript, models.FrameworkAngular, "template-angular-ts"},
		{models.LangJavaScript, models.FrameworkSvelte, "template-svelte"},
	}

	for _, tt := range tests {
		sel := models.TemplateSelection{Language: tt.lang, Framework: tt.fw}
		t.Run(tt.want, func(t *testing.T) {
			got, err := TemplateDirName(sel)
			if err != nil {
				t.Fatalf("TemplateDirName(%v) error: %v", sel, err)
			}
			if got != tt.want {
				t.Errorf("TemplateDirName(%v) = %q, want %q", sel, got, tt.want)
			}
		})
	}
}

func TestTemplateDirName_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		sel  models.TemplateSelection
	}{
		{"unknown_language", models.TemplateSelection{Language: "Dart", Framework: models.FrameworkVue}},
		{"empty_language", models.TemplateSelection{Framework: models.FrameworkReact}},
		{"unknown_framework", models.TemplateSelection{Language: models.LangJavaScript, Framework: "Ember"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TemplateDirName(tt.sel)
			if !errors.Is(err, ErrUnsupportedSelection) {
				t.Errorf("expected ErrUnsupportedSelection, got: %v", err)
			}
		})
	}
}
