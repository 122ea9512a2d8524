// Package catalog holds the built-in component descriptors.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/schoolforge/sitebuilder-backend/internal/components/domain"
)

//go:embed catalog.yaml
var builtin []byte

type file struct {
	Components []domain.Descriptor `yaml:"components"`
}

// Defaults parses the embedded catalog.
func Defaults() ([]domain.Descriptor, error) {
	return Parse(builtin)
}

// Parse decodes a catalog document and checks that every entry is complete
// and keys are unique.
func Parse(data []byte) ([]domain.Descriptor, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Components))
	for i, d := range f.Components {
		switch {
		case strings.TrimSpace(d.Key) == "":
			return nil, fmt.Errorf("catalog entry %d: key is required", i)
		case strings.TrimSpace(d.ComponentName) == "":
			return nil, fmt.Errorf("catalog entry %q: componentName is required", d.Key)
		case strings.TrimSpace(d.ComponentType) == "":
			return nil, fmt.Errorf("catalog entry %q: componentType is required", d.Key)
		}
		if _, dup := seen[d.Key]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate key", d.Key)
		}
		seen[d.Key] = struct{}{}

		if d.PropsSchema == nil {
			f.Components[i].PropsSchema = map[string]string{}
		}
	}
	return f.Components, nil
}
