package layered

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation is returned when an operation name does not match any Operation.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation defines how a layered effect combines its Modification with the prior value.
type Operation uint8

const (
	OperationInvalid Operation = iota
	OperationSet               // discard the prior value
	OperationAdd               // prior + modification
	OperationSubtract          // prior - modification
	OperationMultiply          // prior * modification
	OperationBitwiseOr         // prior | modification
	OperationBitwiseAnd        // prior & modification
	OperationBitwiseXor        // prior ^ modification

	operationCount // sentinel, keep last
)

var operationNames = [operationCount]string{
	OperationInvalid:    "Invalid",
	OperationSet:        "Set",
	OperationAdd:        "Add",
	OperationSubtract:   "Subtract",
	OperationMultiply:   "Multiply",
	OperationBitwiseOr:  "BitwiseOr",
	OperationBitwiseAnd: "BitwiseAnd",
	OperationBitwiseXor: "BitwiseXor",
}

// AllOperations returns every evaluable operation (Invalid excluded).
func AllOperations() []Operation {
	ops := make([]Operation, 0, operationCount-1)
	for op := OperationSet; op < operationCount; op++ {
		ops = append(ops, op)
	}
	return ops
}

// IsValid reports whether op can be evaluated.
func (op Operation) IsValid() bool {
	return op != OperationInvalid && op < operationCount
}

func (op Operation) String() string {
	if op < operationCount {
		return operationNames[op]
	}
	return fmt.Sprintf("Operation(%d)", uint8(op))
}

// ParseOperation resolves a content name ("add", "bitwise_or", "BitwiseXor").
func ParseOperation(name string) (Operation, error) {
	norm := normalizeName(name)
	for op := OperationSet; op < operationCount; op++ {
		if normalizeName(operationNames[op]) == norm {
			return op, nil
		}
	}
	return OperationInvalid, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Evaluate applies op to lhs with operand rhs.
// Arithmetic wraps on overflow like any int32 arithmetic.
//
// Panics on OperationInvalid: definitions are validated before they are
// stored, so reaching here with an invalid op is a programming error.
func Evaluate(lhs, rhs int32, op Operation) int32 {
	switch op {
	case OperationSet:
		return rhs
	case OperationAdd:
		return lhs + rhs
	case OperationSubtract:
		return lhs - rhs
	case OperationMultiply:
		return lhs * rhs
	case OperationBitwiseOr:
		return lhs | rhs
	case OperationBitwiseAnd:
		return lhs & rhs
	case OperationBitwiseXor:
		return lhs ^ rhs
	default:
		panic(fmt.Sprintf("layered: evaluate called with %s", op))
	}
}
