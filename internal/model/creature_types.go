package model

// CreatureTypes is the bitmask stored in the Types attribute.
// Effects add or strip types with BitwiseOr / BitwiseAnd.
type CreatureTypes uint32

const (
	TypeArtifact CreatureTypes = 1 << iota
	TypeCreature
	TypeEnchantment
	TypeLand
	TypePlaneswalker
	TypeTribal
)

// Has reports whether every bit of flag is set.
func (t CreatureTypes) Has(flag CreatureTypes) bool { return t&flag == flag }

// CreatureSubtypes is the bitmask stored in the Subtypes attribute.
type CreatureSubtypes uint32

const (
	SubtypeHuman CreatureSubtypes = 1 << iota
	SubtypeWizard
	SubtypeElf
	SubtypeGoblin
	SubtypeZombie
	SubtypeDragon
	SubtypeAngel
	SubtypeBeast
)

func (t CreatureSubtypes) Has(flag CreatureSubtypes) bool { return t&flag == flag }

// CreatureSupertypes is the bitmask stored in the Supertypes attribute.
type CreatureSupertypes uint32

const (
	SupertypeBasic CreatureSupertypes = 1 << iota
	SupertypeLegendary
	SupertypeSnow
	SupertypeWorld
)

func (t CreatureSupertypes) Has(flag CreatureSupertypes) bool { return t&flag == flag }
