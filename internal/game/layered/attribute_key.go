package layered

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAttribute is returned when an attribute name does not match any AttributeKey.
var ErrUnknownAttribute = errors.New("unknown attribute")

// AttributeKey identifies a trackable scalar quality of an owner.
// Keys are stable and comparable; the zero value is AttributeInvalid.
type AttributeKey uint8

const (
	AttributeInvalid AttributeKey = iota
	AttributePower
	AttributeToughness
	AttributeLoyalty
	AttributeColor
	AttributeTypes
	AttributeSubtypes
	AttributeSupertypes
	AttributeConvertedManaCost
	AttributeController

	attributeCount // sentinel, keep last
)

var attributeNames = [attributeCount]string{
	AttributeInvalid:           "Invalid",
	AttributePower:             "Power",
	AttributeToughness:         "Toughness",
	AttributeLoyalty:           "Loyalty",
	AttributeColor:             "Color",
	AttributeTypes:             "Types",
	AttributeSubtypes:          "Subtypes",
	AttributeSupertypes:        "Supertypes",
	AttributeConvertedManaCost: "ConvertedManaCost",
	AttributeController:        "Controller",
}

// AllAttributeKeys returns every declared key in declaration order, Invalid included.
func AllAttributeKeys() []AttributeKey {
	keys := make([]AttributeKey, 0, attributeCount)
	for k := range attributeCount {
		keys = append(keys, k)
	}
	return keys
}

// IsValid reports whether k names a real attribute.
func (k AttributeKey) IsValid() bool {
	return k != AttributeInvalid && k < attributeCount
}

func (k AttributeKey) String() string {
	if k < attributeCount {
		return attributeNames[k]
	}
	return fmt.Sprintf("AttributeKey(%d)", uint8(k))
}

// ParseAttributeKey resolves a content name ("power", "Power", "converted_mana_cost")
// into an AttributeKey. Invalid is never returned without an error.
func ParseAttributeKey(name string) (AttributeKey, error) {
	norm := normalizeName(name)
	for k := AttributePower; k < attributeCount; k++ {
		if normalizeName(attributeNames[k]) == norm {
			return k, nil
		}
	}
	return AttributeInvalid, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}

// normalizeName folds case and drops '_', '-' and spaces so that
// snake_case, kebab-case and CamelCase spellings compare equal.
func normalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
