package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a full catalog from a YAML file. Missing sections fall back to
// the built-in defaults, so a file may override just materials or just codes.
func Load(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(cat.Materials) == 0 {
		cat.Materials = defaultMaterials
	}
	if len(cat.Codes) == 0 {
		cat.Codes = defaultCodes
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// validate rejects catalogs that downstream optimization cannot use.
func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Materials))
	for i, mat := range c.Materials {
		if mat.Key == "" {
			return fmt.Errorf("material %d: missing key", i)
		}
		if seen[mat.Key] {
			return fmt.Errorf("material %d: duplicate key %q", i, mat.Key)
		}
		seen[mat.Key] = true
		if mat.Properties.Cost < 0 || mat.Properties.Density < 0 {
			return fmt.Errorf("material %q: negative cost or density", mat.Key)
		}
		if s := mat.Properties.Sustainability; s < 1 || s > 10 {
			return fmt.Errorf("material %q: sustainability %g outside 1-10", mat.Key, s)
		}
	}
	return nil
}
