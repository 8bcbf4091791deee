package layered

import "fmt"

// EffectDefinition describes one modifier as authored content:
// which attribute it targets, how it combines, the operand, and its layer.
//
// Smaller layers are applied first. Effects sharing a layer are applied
// in the order they were added (timestamp order). Layer is unbounded and
// may be negative.
//
// Value type, immutable once constructed.
type EffectDefinition struct {
	attribute    AttributeKey
	operation    Operation
	modification int32
	layer        int32
}

// NewEffectDefinition creates a definition. No validation happens here;
// invalid definitions are rejected when applied (see IsValid).
func NewEffectDefinition(attribute AttributeKey, operation Operation, modification, layer int32) EffectDefinition {
	return EffectDefinition{
		attribute:    attribute,
		operation:    operation,
		modification: modification,
		layer:        layer,
	}
}

func (d EffectDefinition) Attribute() AttributeKey { return d.attribute }
func (d EffectDefinition) Operation() Operation    { return d.operation }
func (d EffectDefinition) Modification() int32     { return d.modification }
func (d EffectDefinition) Layer() int32            { return d.layer }

// IsValid reports whether the definition may be applied to an owner.
func (d EffectDefinition) IsValid() bool {
	return d.attribute.IsValid() && d.operation.IsValid()
}

func (d EffectDefinition) String() string {
	return fmt.Sprintf("%s %s %d @layer %d", d.attribute, d.operation, d.modification, d.layer)
}
