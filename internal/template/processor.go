// Package template renders the vite config files the scaffolding actions
// generate. The bodies ship embedded in the binary; only the parameters vary.
package template

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed assets/*.tmpl
var assets embed.FS

// GHPagesData parameterizes the GitHub Pages build config
type GHPagesData struct {
	BasePath string
}

// BundleData parameterizes the iife bundle build config
type BundleData struct {
	DashName string
	CapsName string
}

// RenderGHPagesConfig renders the vite.gh-pages.config.ts body
func RenderGHPagesConfig(data GHPagesData) (string, error) {
	return render("vite.gh-pages.config.ts.tmpl", data)
}

// RenderBundleConfig renders the vite.react-angular.config.ts body
func RenderBundleConfig(data BundleData) (string, error) {
	return render("vite.react-angular.config.ts.tmpl", data)
}

// render loads an embedded template body, registers helper functions and
// executes it with data
func render(name string, data interface{}) (string, error) {
	content, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template %s: %w", name, err)
	}

	// Register helper functions before parsing
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
