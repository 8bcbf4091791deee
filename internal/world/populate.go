package world

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/wizards/internal/data"
	"github.com/udisondev/wizards/internal/model"
)

// Populate spawns every creature template of content and applies its effects
// in listed order. Effects with a duration are tracked by exp (may be nil).
func Populate(w *World, exp *Expirer, content *data.Content) ([]*model.Creature, error) {
	creatures := make([]*model.Creature, 0, len(content.Creatures))
	for _, tpl := range content.Creatures {
		effects, err := content.TemplateEffects(tpl)
		if err != nil {
			return creatures, err
		}

		c := w.Spawn(tpl.Name, tpl.Attributes)
		for _, entry := range effects {
			h, ok := c.AddLayeredEffect(entry.Definition)
			if !ok {
				return creatures, fmt.Errorf("applying %q to %q: rejected", entry.Name, tpl.Name)
			}
			if exp != nil && entry.Duration > 0 {
				exp.Track(c, h, entry.Duration)
			}
		}

		slog.Debug("creature populated",
			"objectID", c.ObjectID(),
			"name", tpl.Name,
			"effects", len(effects))
		creatures = append(creatures, c)
	}

	slog.Info("world populated", "creatures", len(creatures))
	return creatures, nil
}
