package schema

import (
	"fmt"
	"strings"
)

// FieldType is the variant every cell of a column carries. It is fixed
// when the column is created.
type FieldType uint8

const (
	UintFieldType FieldType = iota + 1
	IntFieldType
	CharFieldType
	FloatFieldType
	DoubleFieldType
	StringFieldType
	StructFieldType
)

func (f FieldType) String() string {
	switch f {
	case UintFieldType:
		return "UInt"
	case IntFieldType:
		return "Int"
	case CharFieldType:
		return "Char"
	case FloatFieldType:
		return "Float"
	case DoubleFieldType:
		return "Double"
	case StringFieldType:
		return "String"
	case StructFieldType:
		return "Struct"
	default:
		return ""
	}
}

// Valid reports whether f is one of the declared variants.
func (f FieldType) Valid() bool {
	return f >= UintFieldType && f <= StructFieldType
}

// Numeric reports whether values of f compare as plain numbers.
func (f FieldType) Numeric() bool {
	switch f {
	case UintFieldType, IntFieldType, FloatFieldType, DoubleFieldType:
		return true
	default:
		return false
	}
}

var ErrUnknownFieldType = fmt.Errorf("unknown field type")

// ParseFieldType maps a user supplied word to a field type.
func ParseFieldType(s string) (FieldType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uint":
		return UintFieldType, nil
	case "int":
		return IntFieldType, nil
	case "char":
		return CharFieldType, nil
	case "float":
		return FloatFieldType, nil
	case "double":
		return DoubleFieldType, nil
	case "string":
		return StringFieldType, nil
	case "struct", "structure":
		return StructFieldType, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFieldType, s)
	}
}
