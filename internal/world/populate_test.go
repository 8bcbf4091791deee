package world

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/wizards/internal/data"
	"github.com/udisondev/wizards/internal/game/layered"
	"github.com/udisondev/wizards/internal/model"
)

func loadTestContent(t *testing.T) *data.Content {
	t.Helper()
	content, err := data.LoadContent(context.Background(),
		"../data/testdata/effects.yaml", "../data/testdata/creatures.yaml")
	require.NoError(t, err)
	return content
}

func TestPopulate(t *testing.T) {
	clock := layered.NewManualClock(0)
	w := New(clock)
	e := NewExpirer(w, 0)

	creatures, err := Populate(w, e, loadTestContent(t))
	require.NoError(t, err)
	require.Len(t, creatures, 3)
	bears, sorcerer, king := creatures[0], creatures[1], creatures[2]

	assert.Equal(t, int32(5), bears.CurrentAttribute(layered.AttributePower))
	assert.Equal(t, int32(5), bears.CurrentAttribute(layered.AttributeToughness))

	// (1 - 2) * 2, both in layer 7 in listed order.
	assert.Equal(t, int32(-2), sorcerer.CurrentAttribute(layered.AttributePower))
	assert.Equal(t, int32(8), sorcerer.CurrentAttribute(layered.AttributeColor))

	assert.True(t, king.CurrentTypes().Has(model.TypeArtifact))
	assert.True(t, king.CurrentSupertypes().Has(model.SupertypeLegendary))
	assert.Equal(t, int32(2), king.CurrentAttribute(layered.AttributeController))
	assert.Equal(t, int32(1), king.CurrentAttribute(layered.AttributePower))

	// giant_growth x2, weakness, double_strike, steal
	assert.Equal(t, 5, e.Pending())

	assert.Equal(t, 1, e.Tick(clock.Advance(500*time.Millisecond)))
	assert.Equal(t, int32(-1), sorcerer.CurrentAttribute(layered.AttributePower))

	assert.Equal(t, 1, e.Tick(clock.Advance(500*time.Millisecond)))
	assert.Equal(t, int32(1), sorcerer.CurrentAttribute(layered.AttributePower))

	assert.Equal(t, 1, e.Tick(clock.Advance(500*time.Millisecond)))
	assert.Equal(t, int32(1), king.CurrentAttribute(layered.AttributeController))

	assert.Equal(t, 2, e.Tick(clock.Advance(500*time.Millisecond)))
	assert.Equal(t, int32(2), bears.CurrentAttribute(layered.AttributePower))
	assert.Zero(t, e.Pending())

	// Permanent effects stay.
	assert.Equal(t, int32(8), sorcerer.CurrentAttribute(layered.AttributeColor))
	assert.Equal(t, int32(1), king.CurrentAttribute(layered.AttributeToughness))
}

func TestPopulate_WithoutExpirer(t *testing.T) {
	w := New(layered.NewManualClock(0))

	creatures, err := Populate(w, nil, loadTestContent(t))
	require.NoError(t, err)
	assert.Len(t, creatures, 3)
	assert.Equal(t, 3, w.Count())
}

func TestPopulate_RejectedEffect(t *testing.T) {
	content := loadTestContent(t)
	w := New(nil)

	_, err := Populate(w, nil, content)
	assert.Error(t, err, "a world without a clock cannot apply effects")
}
