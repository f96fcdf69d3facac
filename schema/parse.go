package schema

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var ErrInvalidValue = fmt.Errorf("invalid value")

// ParseValue reads text typed by a user into a value of typ. The literal
// NULL (any case) yields an absent value; for strings a leading
// backslash escapes it, so \NULL is the text NULL and \\NULL is \NULL.
// Surrounding spaces are ignored except in strings and in a single
// space given as a char.
func ParseValue(typ FieldType, text string) (Value, error) {
	if strings.EqualFold(strings.TrimSpace(text), NullText) {
		return nil, nil
	}

	switch typ {
	case UintFieldType:
		n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %s", ErrInvalidValue, typ, err.Error())
		}
		return UInt(n), nil
	case IntFieldType:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %s", ErrInvalidValue, typ, err.Error())
		}
		return Int(n), nil
	case CharFieldType:
		char := text
		if utf8.RuneCountInString(char) != 1 {
			char = strings.TrimSpace(char)
		}
		if utf8.RuneCountInString(char) != 1 {
			return nil, fmt.Errorf("%w for %s: expected a single character, got %q", ErrInvalidValue, typ, text)
		}
		r, _ := utf8.DecodeRuneInString(char)
		return Char(r), nil
	case FloatFieldType:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %s", ErrInvalidValue, typ, err.Error())
		}
		return Float(f), nil
	case DoubleFieldType:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %s", ErrInvalidValue, typ, err.Error())
		}
		return Double(f), nil
	case StringFieldType:
		if rest, ok := strings.CutPrefix(text, `\`); ok && isEscapedNull(rest) {
			return String(rest), nil
		}
		return String(text), nil
	case StructFieldType:
		return parseRecord(text)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFieldType, typ)
	}
}

func isEscapedNull(text string) bool {
	return strings.EqualFold(strings.TrimSpace(strings.TrimLeft(text, `\`)), NullText)
}

// parseRecord accepts "id,value" or "id,value,description". The
// description keeps any further commas.
func parseRecord(text string) (Value, error) {
	parts := strings.SplitN(text, ",", 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w for %s: expected id,value[,description], got %q", ErrInvalidValue, StructFieldType, text)
	}

	id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w for %s id: %s", ErrInvalidValue, StructFieldType, err.Error())
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w for %s value: %s", ErrInvalidValue, StructFieldType, err.Error())
	}

	description := ""
	if len(parts) == 3 {
		description = strings.TrimSpace(parts[2])
	}

	return NewRecord(int32(id), val, description), nil
}
