package testutil

import "github.com/udisondev/wizards/internal/game/layered"

// Fixtures содержит часто используемые определения эффектов,
// чтобы не дублировать их в тестах.
var Fixtures = struct {
	// Power, layer 7
	PumpPower    layered.EffectDefinition // +3
	WeakenPower  layered.EffectDefinition // -2
	DoublePower  layered.EffectDefinition // *2
	SetPowerZero layered.EffectDefinition // =0, layer 1

	// Color, layer 5
	PaintRed layered.EffectDefinition // =8
	AddBlue  layered.EffectDefinition // |2

	// Недопустимое определение (Invalid operation)
	Broken layered.EffectDefinition

	// Базовые атрибуты 2/2 существа
	BearAttributes map[layered.AttributeKey]int32
}{
	PumpPower:    layered.NewEffectDefinition(layered.AttributePower, layered.OperationAdd, 3, 7),
	WeakenPower:  layered.NewEffectDefinition(layered.AttributePower, layered.OperationSubtract, 2, 7),
	DoublePower:  layered.NewEffectDefinition(layered.AttributePower, layered.OperationMultiply, 2, 7),
	SetPowerZero: layered.NewEffectDefinition(layered.AttributePower, layered.OperationSet, 0, 1),

	PaintRed: layered.NewEffectDefinition(layered.AttributeColor, layered.OperationSet, 8, 5),
	AddBlue:  layered.NewEffectDefinition(layered.AttributeColor, layered.OperationBitwiseOr, 2, 5),

	Broken: layered.NewEffectDefinition(layered.AttributePower, layered.OperationInvalid, 1, 1),

	BearAttributes: map[layered.AttributeKey]int32{
		layered.AttributePower:     2,
		layered.AttributeToughness: 2,
	},
}
