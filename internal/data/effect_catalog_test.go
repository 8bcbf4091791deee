package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/wizards/internal/game/layered"
)

func TestParseEffectCatalog(t *testing.T) {
	catalog, err := ParseEffectCatalog([]byte(`
effects:
  - name: pump
    attribute: power
    operation: add
    modification: 3
    layer: 7
    duration: 2s
  - name: paint
    attribute: Color
    operation: BitwiseOr
    modification: 0x10
    layer: 5
`))
	require.NoError(t, err)

	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, []string{"pump", "paint"}, catalog.Names())

	pump, err := catalog.Get("pump")
	require.NoError(t, err)
	assert.Equal(t, layered.NewEffectDefinition(layered.AttributePower, layered.OperationAdd, 3, 7), pump.Definition)
	assert.Equal(t, 2*time.Second, pump.Duration)

	paint, err := catalog.Get("paint")
	require.NoError(t, err)
	assert.Equal(t, int32(16), paint.Definition.Modification())
	assert.Equal(t, layered.OperationBitwiseOr, paint.Definition.Operation())
	assert.Zero(t, paint.Duration, "no duration means permanent")
}

func TestParseEffectCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "unknown attribute",
			yaml:    "effects:\n  - {name: x, attribute: mana, operation: add, modification: 1, layer: 1}\n",
			wantErr: layered.ErrUnknownAttribute,
		},
		{
			name:    "invalid attribute",
			yaml:    "effects:\n  - {name: x, attribute: invalid, operation: add, modification: 1, layer: 1}\n",
			wantErr: layered.ErrUnknownAttribute,
		},
		{
			name:    "unknown operation",
			yaml:    "effects:\n  - {name: x, attribute: power, operation: divide, modification: 1, layer: 1}\n",
			wantErr: layered.ErrUnknownOperation,
		},
		{
			name:    "duplicate name",
			yaml:    "effects:\n  - {name: x, attribute: power, operation: add, modification: 1, layer: 1}\n  - {name: x, attribute: power, operation: set, modification: 1, layer: 1}\n",
			wantErr: ErrDuplicateEffect,
		},
		{
			name:    "empty name",
			yaml:    "effects:\n  - {attribute: power, operation: add, modification: 1, layer: 1}\n",
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "negative duration",
			yaml:    "effects:\n  - {name: x, attribute: power, operation: add, modification: 1, layer: 1, duration: -1s}\n",
			wantErr: ErrInvalidDefinition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEffectCatalog([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseEffectCatalog_MalformedYAML(t *testing.T) {
	_, err := ParseEffectCatalog([]byte("effects: [unterminated"))
	assert.Error(t, err)
}

func TestEffectCatalog_GetUnknown(t *testing.T) {
	_, err := NewEffectCatalog().Get("nope")
	assert.ErrorIs(t, err, ErrUnknownEffect)
}

func TestEffectCatalog_AddRejectsInvalidDefinition(t *testing.T) {
	c := NewEffectCatalog()
	err := c.Add(EffectEntry{
		Name:       "broken",
		Definition: layered.NewEffectDefinition(layered.AttributePower, layered.OperationInvalid, 1, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Zero(t, c.Len())
}

func TestSpecFromEntry_RoundTrip(t *testing.T) {
	entry := EffectEntry{
		Name:       "steal",
		Definition: layered.NewEffectDefinition(layered.AttributeController, layered.OperationSet, 2, 2),
		Duration:   1500 * time.Millisecond,
	}

	spec := SpecFromEntry(entry)
	assert.Equal(t, "Controller", spec.Attribute)
	assert.Equal(t, "Set", spec.Operation)

	got, err := spec.Entry()
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestLoadEffectCatalog(t *testing.T) {
	catalog, err := LoadEffectCatalog("testdata/effects.yaml")
	require.NoError(t, err)
	assert.Equal(t, 11, catalog.Len())

	entries := catalog.Entries()
	require.Len(t, entries, 11)
	assert.Equal(t, "giant_growth", entries[0].Name)

	_, err = LoadEffectCatalog("testdata/missing.yaml")
	assert.Error(t, err)
}
