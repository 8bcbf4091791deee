package data

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/wizards/internal/game/layered"
)

var (
	ErrUnknownEffect     = errors.New("unknown effect")
	ErrDuplicateEffect   = errors.New("duplicate effect")
	ErrInvalidDefinition = errors.New("invalid effect definition")
)

// EffectEntry is one named effect of the content catalog.
// Duration 0 means the effect stays until removed explicitly.
type EffectEntry struct {
	Name       string
	Definition layered.EffectDefinition
	Duration   time.Duration
}

// EffectCatalog — registry of named effect definitions, in authoring order.
type EffectCatalog struct {
	entries map[string]EffectEntry
	order   []string
}

// NewEffectCatalog creates an empty catalog.
func NewEffectCatalog() *EffectCatalog {
	return &EffectCatalog{entries: make(map[string]EffectEntry)}
}

// Add registers entry. Rejects empty or duplicate names, invalid
// definitions and negative durations.
func (c *EffectCatalog) Add(entry EffectEntry) error {
	if entry.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}
	if _, exists := c.entries[entry.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateEffect, entry.Name)
	}
	if !entry.Definition.IsValid() {
		return fmt.Errorf("%w: %q (%s)", ErrInvalidDefinition, entry.Name, entry.Definition)
	}
	if entry.Duration < 0 {
		return fmt.Errorf("%w: %q has negative duration %s", ErrInvalidDefinition, entry.Name, entry.Duration)
	}
	c.entries[entry.Name] = entry
	c.order = append(c.order, entry.Name)
	return nil
}

// Get returns the entry registered under name.
func (c *EffectCatalog) Get(name string) (EffectEntry, error) {
	entry, ok := c.entries[name]
	if !ok {
		return EffectEntry{}, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return entry, nil
}

// Names returns effect names in authoring order.
func (c *EffectCatalog) Names() []string {
	return slices.Clone(c.order)
}

// Entries returns all entries in authoring order.
func (c *EffectCatalog) Entries() []EffectEntry {
	out := make([]EffectEntry, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.entries[name])
	}
	return out
}

// Len returns the number of entries.
func (c *EffectCatalog) Len() int {
	return len(c.order)
}

// EffectSpec is the authored form of an effect, shared by the YAML file
// and the effect_definitions table.
type EffectSpec struct {
	Name         string        `yaml:"name"`
	Attribute    string        `yaml:"attribute"`
	Operation    string        `yaml:"operation"`
	Modification int32         `yaml:"modification"`
	Layer        int32         `yaml:"layer"`
	Duration     time.Duration `yaml:"duration"`
}

// Entry resolves attribute and operation names into a catalog entry.
func (s EffectSpec) Entry() (EffectEntry, error) {
	attr, err := layered.ParseAttributeKey(s.Attribute)
	if err != nil {
		return EffectEntry{}, fmt.Errorf("effect %q: %w", s.Name, err)
	}
	op, err := layered.ParseOperation(s.Operation)
	if err != nil {
		return EffectEntry{}, fmt.Errorf("effect %q: %w", s.Name, err)
	}
	return EffectEntry{
		Name:       s.Name,
		Definition: layered.NewEffectDefinition(attr, op, s.Modification, s.Layer),
		Duration:   s.Duration,
	}, nil
}

// SpecFromEntry is the inverse of EffectSpec.Entry.
func SpecFromEntry(e EffectEntry) EffectSpec {
	return EffectSpec{
		Name:         e.Name,
		Attribute:    e.Definition.Attribute().String(),
		Operation:    e.Definition.Operation().String(),
		Modification: e.Definition.Modification(),
		Layer:        e.Definition.Layer(),
		Duration:     e.Duration,
	}
}

type effectFile struct {
	Effects []EffectSpec `yaml:"effects"`
}

// ParseEffectCatalog builds a catalog from YAML of the form
//
//	effects:
//	  - name: giant_growth
//	    attribute: power
//	    operation: add
//	    modification: 3
//	    layer: 7
//	    duration: 30s
func ParseEffectCatalog(raw []byte) (*EffectCatalog, error) {
	var file effectFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing effects: %w", err)
	}

	catalog := NewEffectCatalog()
	for i, spec := range file.Effects {
		entry, err := spec.Entry()
		if err != nil {
			return nil, fmt.Errorf("effects[%d]: %w", i, err)
		}
		if err := catalog.Add(entry); err != nil {
			return nil, fmt.Errorf("effects[%d]: %w", i, err)
		}
	}
	return catalog, nil
}

// LoadEffectCatalog reads and parses the effect catalog at path.
func LoadEffectCatalog(path string) (*EffectCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading effects %s: %w", path, err)
	}
	catalog, err := ParseEffectCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("loaded effect catalog", "path", path, "count", catalog.Len())
	return catalog, nil
}
