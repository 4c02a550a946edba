package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed all:templates
var templates embed.FS

// Engine renders a template identified by its path under the template tree
// with a flat set of values.
type Engine interface {
	Render(id string, values map[string]any) ([]byte, error)
}

// NewEngine returns an Engine over the embedded templates.
func NewEngine() Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return &fsEngine{fsys: sub}
}

type fsEngine struct {
	fsys fs.FS
}

// Render executes id with text/template when it ends in ".tmpl" and
// returns any other file verbatim.
func (e *fsEngine) Render(id string, values map[string]any) ([]byte, error) {
	data, err := fs.ReadFile(e.fsys, id)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", id, err)
	}
	if !strings.HasSuffix(id, ".tmpl") {
		return data, nil
	}
	t, err := template.New(id).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", id, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, values); err != nil {
		return nil, fmt.Errorf("template %s: %w", id, err)
	}
	return buf.Bytes(), nil
}
