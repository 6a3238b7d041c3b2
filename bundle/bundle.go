// Package bundle turns a directory of HTML template files into a Go
// source file of markup-string constants, so component constructors can
// be handed their markup without any loading mechanism at run time.
// Templates are validated at bundle time: a file that parses to zero
// elements would only fail later, inside a component constructor.
package bundle

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Run executes the bundling described by the manifest at path and
// writes the generated file next to it.
func Run(manifestPath string) error {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	loaded := make([]loadedTemplate, 0, len(m.Templates))
	for _, t := range m.Templates {
		markup, err := os.ReadFile(m.resolve(t.File))
		if err != nil {
			return fmt.Errorf("bundle: read template %q: %w", t.Name, err)
		}
		if err := validateMarkup(string(markup)); err != nil {
			return fmt.Errorf("bundle: template %q (%s): %w", t.Name, t.File, err)
		}
		loaded = append(loaded, loadedTemplate{
			Name:   t.Name,
			File:   t.File,
			Markup: string(markup),
		})
	}

	src, err := generate(m.Package, loaded)
	if err != nil {
		return err
	}

	out := m.resolve(m.Out)
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("bundle: write %s: %w", out, err)
	}
	return nil
}

type loadedTemplate struct {
	Name   string
	File   string
	Markup string
}

// validateMarkup applies the same acceptance rule the hosts use: the
// markup must parse and yield at least one element.
func validateMarkup(markup string) error {
	if strings.TrimSpace(markup) == "" {
		return fmt.Errorf("empty template")
	}
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return nil
		}
	}
	return fmt.Errorf("no elements in template")
}
