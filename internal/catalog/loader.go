package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/harness/pubcheck/util/common/errors"
)

// file is the on-disk layout of a catalog file.
type file struct {
	Artifacts []Entry `yaml:"artifacts" toml:"artifacts"`
}

// Load reads a catalog from a YAML or TOML file, chosen by extension.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewFileError(path, "read", err)
	}

	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("error parsing catalog file %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("error parsing catalog file %s: %w", path, err)
		}
	default:
		return nil, errors.NewValidationError("catalog", fmt.Sprintf("unsupported catalog format %q", filepath.Ext(path)))
	}

	c := Catalog(f.Artifacts)
	if len(c) == 0 {
		return nil, errors.NewValidationError("catalog", fmt.Sprintf("%s lists no artifacts", path))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Filter keeps the entries whose name matches at least one pattern.
// Patterns support the usual glob wildcards (* ? [...] {a,b}).
func (c Catalog) Filter(patterns []string) (Catalog, error) {
	if len(patterns) == 0 {
		return c, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.NewValidationError("only", fmt.Sprintf("invalid pattern %q: %v", p, err))
		}
		globs = append(globs, g)
	}

	var out Catalog
	for _, e := range c {
		for _, g := range globs {
			if g.Match(e.Name) {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}
