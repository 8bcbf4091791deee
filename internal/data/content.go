package data

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Content is everything a world needs from the content layer.
type Content struct {
	Effects   *EffectCatalog
	Creatures []CreatureTemplate
}

// LoadContent loads the effect catalog and creature templates concurrently
// and checks that every template references known effects.
func LoadContent(ctx context.Context, effectsPath, creaturesPath string) (*Content, error) {
	var content Content

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		catalog, err := LoadEffectCatalog(effectsPath)
		if err != nil {
			return err
		}
		content.Effects = catalog
		return nil
	})
	g.Go(func() error {
		templates, err := LoadCreatureTemplates(creaturesPath)
		if err != nil {
			return err
		}
		content.Creatures = templates
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	if err := content.Validate(); err != nil {
		return nil, err
	}
	return &content, nil
}

// Validate checks that every effect referenced by a template exists in the catalog.
func (c *Content) Validate() error {
	if c.Effects == nil {
		return fmt.Errorf("validating content: no effect catalog")
	}
	for _, tpl := range c.Creatures {
		for _, name := range tpl.Effects {
			if _, err := c.Effects.Get(name); err != nil {
				return fmt.Errorf("validating creature %q: %w", tpl.Name, err)
			}
		}
	}
	return nil
}

// TemplateEffects resolves the effects listed by tpl, in listed order.
func (c *Content) TemplateEffects(tpl CreatureTemplate) ([]EffectEntry, error) {
	out := make([]EffectEntry, 0, len(tpl.Effects))
	for _, name := range tpl.Effects {
		entry, err := c.Effects.Get(name)
		if err != nil {
			return nil, fmt.Errorf("creature %q: %w", tpl.Name, err)
		}
		out = append(out, entry)
	}
	return out, nil
}
