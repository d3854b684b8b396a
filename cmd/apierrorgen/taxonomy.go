package main

import (
	"fmt"
	"go/token"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

type taxonomy struct {
	Errors []errorDef `yaml:"errors"`
}

type errorDef struct {
	Name          string                 `yaml:"name"`
	Description   string                 `yaml:"description,omitempty"`
	Key           string                 `yaml:"key"`
	Code          string                 `yaml:"code"`
	Message       string                 `yaml:"message,omitempty"`
	Data          map[string]interface{} `yaml:"data,omitempty"`
	InternalData  map[string]interface{} `yaml:"internalData,omitempty"`
	HidePath      bool                   `yaml:"hidePath,omitempty"`
	HideLocations bool                   `yaml:"hideLocations,omitempty"`
}

func loadTaxonomy(filename string) (*taxonomy, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var t taxonomy
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &t, nil
}

// checkDefs validates the definitions and returns them sorted by name.
func checkDefs(defs []errorDef) ([]errorDef, error) {
	seen := make(map[string]bool)
	for _, def := range defs {
		if !token.IsIdentifier(def.Name) || !token.IsExported(def.Name) {
			return nil, fmt.Errorf("error %q: name must be an exported Go identifier", def.Name)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("error %q: defined twice", def.Name)
		}
		seen[def.Name] = true
		if def.Key == "" {
			return nil, fmt.Errorf("error %q: missing key", def.Name)
		}
		if def.Code == "" {
			return nil, fmt.Errorf("error %q: missing code", def.Name)
		}
	}

	sorted := append([]errorDef(nil), defs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted, nil
}
