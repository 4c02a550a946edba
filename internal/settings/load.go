// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/qiniu/x/log"
	"gopkg.in/yaml.v3"
)

type decoder struct {
	ext       string
	unmarshal func(data []byte, v any) error
}

// decoders are tried in order; the first existing document wins.
var decoders = []decoder{
	{".json", json.Unmarshal},
	{".yaml", yaml.Unmarshal},
	{".toml", toml.Unmarshal},
}

// Load reads the kit catalog from dir.
func Load(dir string) (*Catalog, error) {
	var c Catalog
	path, err := read(dir, CatalogName, &c)
	if err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		err.Path = path
		return nil, err
	}
	log.Debugf("settings: catalog %s: %d compilers, %d cmake, %d kits",
		path, len(c.Compilers), len(c.BuildTools), len(c.Kits))
	return &c, nil
}

// LoadSelection reads the active kit selection from dir. It is independent
// of Load: commands that only inspect the catalog never call it.
func LoadSelection(dir string) (*Selection, error) {
	var s Selection
	path, err := read(dir, SelectionName, &s)
	if err != nil {
		return nil, err
	}
	if s.DefaultKit == "" {
		return nil, &ParseError{Path: path, Field: "default_kit", Err: errRequired}
	}
	log.Debugf("settings: selection %s: default kit %q", path, s.DefaultKit)
	return &s, nil
}

// read decodes the first document named name that exists in dir into v and
// returns its path.
func read(dir, name string, v any) (string, error) {
	for _, d := range decoders {
		path := filepath.Join(dir, name+d.ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := d.unmarshal(data, v); err != nil {
			return "", &ParseError{Path: path, Field: fieldOf(err), Err: err}
		}
		return path, nil
	}
	return "", &MissingError{Dir: dir, Name: name}
}

func fieldOf(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field
	}
	return ""
}

func (c *Catalog) validate() *ParseError {
	switch {
	case c.Compilers == nil:
		return &ParseError{Field: "compilers", Err: errRequired}
	case c.BuildTools == nil:
		return &ParseError{Field: "cmake", Err: errRequired}
	case c.Kits == nil:
		return &ParseError{Field: "kits", Err: errRequired}
	}
	for _, id := range slices.Sorted(maps.Keys(c.Compilers)) {
		if c.Compilers[id].Name == "" {
			return &ParseError{Field: "compilers." + id + ".name", Err: errRequired}
		}
		if c.Compilers[id].Path == "" {
			return &ParseError{Field: "compilers." + id + ".path", Err: errRequired}
		}
	}
	for _, id := range slices.Sorted(maps.Keys(c.BuildTools)) {
		if c.BuildTools[id].Name == "" {
			return &ParseError{Field: "cmake." + id + ".name", Err: errRequired}
		}
		if c.BuildTools[id].Path == "" {
			return &ParseError{Field: "cmake." + id + ".path", Err: errRequired}
		}
	}
	for _, id := range slices.Sorted(maps.Keys(c.Kits)) {
		k := c.Kits[id]
		if k.Name == "" {
			return &ParseError{Field: "kits." + id + ".name", Err: errRequired}
		}
		if k.CompilerID == "" {
			return &ParseError{Field: "kits." + id + ".compiler", Err: errRequired}
		}
		if k.BuildToolID == "" {
			return &ParseError{Field: "kits." + id + ".cmake", Err: errRequired}
		}
	}
	return nil
}
