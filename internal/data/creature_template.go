package data

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/wizards/internal/game/layered"
)

// CreatureTemplate describes a creature to spawn: its initial base
// attributes and the catalog effects applied right after spawning.
type CreatureTemplate struct {
	Name       string
	Attributes map[layered.AttributeKey]int32
	Effects    []string
}

type creatureSpec struct {
	Name       string           `yaml:"name"`
	Attributes map[string]int32 `yaml:"attributes"`
	Effects    []string         `yaml:"effects"`
}

type creatureFile struct {
	Creatures []creatureSpec `yaml:"creatures"`
}

// ParseCreatureTemplates builds templates from YAML of the form
//
//	creatures:
//	  - name: Grizzly Bears
//	    attributes: {power: 2, toughness: 2}
//	    effects: [giant_growth]
func ParseCreatureTemplates(raw []byte) ([]CreatureTemplate, error) {
	var file creatureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing creatures: %w", err)
	}

	templates := make([]CreatureTemplate, 0, len(file.Creatures))
	for i, spec := range file.Creatures {
		if spec.Name == "" {
			return nil, fmt.Errorf("creatures[%d]: empty name", i)
		}
		attrs := make(map[layered.AttributeKey]int32, len(spec.Attributes))
		for name, value := range spec.Attributes {
			key, err := layered.ParseAttributeKey(name)
			if err != nil {
				return nil, fmt.Errorf("creatures[%d] %q: %w", i, spec.Name, err)
			}
			attrs[key] = value
		}
		templates = append(templates, CreatureTemplate{
			Name:       spec.Name,
			Attributes: attrs,
			Effects:    spec.Effects,
		})
	}
	return templates, nil
}

// LoadCreatureTemplates reads and parses the creature templates at path.
func LoadCreatureTemplates(path string) ([]CreatureTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading creatures %s: %w", path, err)
	}
	templates, err := ParseCreatureTemplates(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("loaded creature templates", "path", path, "count", len(templates))
	return templates, nil
}
