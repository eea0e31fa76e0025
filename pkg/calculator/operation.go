package calculator

import (
	"fmt"
	"math"
)

// Operation is the closed set of arithmetic operations.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

var operationNames = map[Operation]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

// Operations returns every supported operation in declaration order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// OperationNames returns the wire names of all supported operations.
func OperationNames() []string {
	ops := Operations()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.String())
	}
	return names
}

// ParseOperation maps a wire name to an Operation.
func ParseOperation(name string) (Operation, error) {
	for op, n := range operationNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOperation, name)
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

func (o Operation) MarshalText() ([]byte, error) {
	name, ok := operationNames[o]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOperation, int(o))
	}
	return []byte(name), nil
}

func (o *Operation) UnmarshalText(text []byte) error {
	op, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// Apply computes a <op> b. It fails without side effects on a zero divisor,
// an unknown operation, or a result that does not fit in a finite float64.
func (o Operation) Apply(a, b float64) (float64, error) {
	var result float64

	switch o {
	case OpAdd:
		result = a + b
	case OpSubtract:
		result = a - b
	case OpMultiply:
		result = a * b
	case OpDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		result = a / b
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidOperation, int(o))
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, ErrResultOutOfRange
	}
	return result, nil
}
