package schema

import "unicode/utf8"

// Value is a single present cell. The set of implementations is closed;
// an absent cell is represented by a nil Value.
type Value interface {
	Type() FieldType

	sealed()
}

type (
	UInt   uint32
	Int    int32
	Char   rune
	Float  float32
	Double float64
	String string
)

// DescriptionMaxLen bounds Record.Description in bytes.
const DescriptionMaxLen = 99

// Record is the fixed composite variant. Only Value takes part in ordering.
type Record struct {
	ID          int32
	Value       float64
	Description string
}

func (UInt) Type() FieldType   { return UintFieldType }
func (Int) Type() FieldType    { return IntFieldType }
func (Char) Type() FieldType   { return CharFieldType }
func (Float) Type() FieldType  { return FloatFieldType }
func (Double) Type() FieldType { return DoubleFieldType }
func (String) Type() FieldType { return StringFieldType }
func (Record) Type() FieldType { return StructFieldType }

func (UInt) sealed()   {}
func (Int) sealed()    {}
func (Char) sealed()   {}
func (Float) sealed()  {}
func (Double) sealed() {}
func (String) sealed() {}
func (Record) sealed() {}

// NewRecord builds a record, cutting the description down to
// DescriptionMaxLen bytes on a rune boundary.
func NewRecord(id int32, value float64, description string) Record {
	return Record{
		ID:          id,
		Value:       value,
		Description: clampDescription(description),
	}
}

func clampDescription(s string) string {
	if len(s) <= DescriptionMaxLen {
		return s
	}

	cut := DescriptionMaxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}

// Clone returns an owned copy of v suitable for storing in a column.
// Pointers to a variant are dereferenced, a nil pointer is absent, and
// records get their description bounded on the way in.
func Clone(v Value) Value {
	switch t := v.(type) {
	case nil:
		return nil
	case Record:
		t.Description = clampDescription(t.Description)
		return t
	case *Record:
		if t == nil {
			return nil
		}
		return NewRecord(t.ID, t.Value, t.Description)
	case *UInt:
		return deref(t)
	case *Int:
		return deref(t)
	case *Char:
		return deref(t)
	case *Float:
		return deref(t)
	case *Double:
		return deref(t)
	case *String:
		return deref(t)
	default:
		return v
	}
}

func deref[T Value](p *T) Value {
	if p == nil {
		return nil
	}
	return *p
}

// TypeOf returns the variant of v and false when v is absent.
func TypeOf(v Value) (FieldType, bool) {
	v = Clone(v)
	if v == nil {
		return 0, false
	}
	return v.Type(), true
}
