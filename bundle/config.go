package bundle

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest describes a bundling run: which template files to embed and
// where the generated Go source goes.
type Manifest struct {
	// Package is the package name of the generated file.
	Package string
	// Out is the path of the generated file, relative to the manifest.
	Out string
	// Templates lists the markup files to embed.
	Templates []Template

	// dir is the manifest's directory; file paths resolve against it.
	dir string
}

// Template is one embedded markup file. Name becomes the Go constant
// holding the file's contents.
type Template struct {
	Name string `toml:"name"`
	File string `toml:"file"`
}

// fileManifest maps the TOML keys of a bundle manifest.
type fileManifest struct {
	Package   string     `toml:"package"`
	Out       string     `toml:"out"`
	Templates []Template `toml:"template"`
}

// LoadManifest reads a TOML manifest, overlaying defaults for keys the
// file does not define.
func LoadManifest(path string) (Manifest, error) {
	m := Manifest{
		Package: "templates",
		Out:     "templates_gen.go",
		dir:     filepath.Dir(path),
	}

	var raw fileManifest
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Manifest{}, fmt.Errorf("load bundle manifest: %w", err)
	}

	if meta.IsDefined("package") {
		m.Package = strings.TrimSpace(raw.Package)
	}
	if meta.IsDefined("out") {
		m.Out = strings.TrimSpace(raw.Out)
	}
	m.Templates = raw.Templates

	if err := m.validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (m Manifest) validate() error {
	if !isIdent(m.Package) {
		return fmt.Errorf("bundle manifest: invalid package name %q", m.Package)
	}
	if len(m.Templates) == 0 {
		return fmt.Errorf("bundle manifest: no [[template]] entries")
	}
	seen := make(map[string]bool)
	for _, t := range m.Templates {
		if !isIdent(t.Name) {
			return fmt.Errorf("bundle manifest: template name %q is not a valid Go identifier", t.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("bundle manifest: duplicate template name %q", t.Name)
		}
		seen[t.Name] = true
		if strings.TrimSpace(t.File) == "" {
			return fmt.Errorf("bundle manifest: template %q has no file", t.Name)
		}
	}
	return nil
}

// resolve returns the template file path anchored at the manifest dir.
func (m Manifest) resolve(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(m.dir, file)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
