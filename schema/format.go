package schema

import (
	"fmt"
	"strconv"
)

// NullText is what absent cells and unsupported types render as.
const NullText = "NULL"

// Format renders v the way a column of type typ displays it.
func Format(typ FieldType, v Value) string {
	v = Clone(v)
	if v == nil || v.Type() != typ {
		return NullText
	}

	switch t := v.(type) {
	case UInt:
		return strconv.FormatUint(uint64(t), 10)
	case Int:
		return strconv.FormatInt(int64(t), 10)
	case Char:
		return string(rune(t))
	case Float:
		return fmt.Sprintf("%.2f", float32(t))
	case Double:
		return fmt.Sprintf("%.2f", float64(t))
	case String:
		return string(t)
	case Record:
		if t.Description == "" {
			return fmt.Sprintf("ID: %d, Value: %.2f", t.ID, t.Value)
		}
		return fmt.Sprintf("ID: %d, Value: %.2f, Description: %s", t.ID, t.Value, t.Description)
	default:
		return NullText
	}
}
