package ops

import (
	"github.com/Samy2700/CDataFrame2/query"
	"github.com/Samy2700/CDataFrame2/schema"
	"golang.org/x/exp/constraints"
)

// Ordering is the result of comparing two cells of the same type.
type Ordering int8

const (
	Less         Ordering = -1
	Equal        Ordering = 0
	Greater      Ordering = 1
	Incomparable Ordering = -2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Incomparable"
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// compareOrdered orders two values of one primitive kind. NaN on either
// side is Incomparable.
func compareOrdered[T constraints.Ordered](a, b T) Ordering {
	if a != a || b != b {
		return Incomparable
	}
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// Compare orders a against b as values of typ. Absent operands, operands
// of another variant and unordered floats are Incomparable. Records
// compare by their Value field only.
func Compare(typ schema.FieldType, a, b schema.Value) Ordering {
	a, b = schema.Clone(a), schema.Clone(b)
	if a == nil || b == nil || a.Type() != typ || b.Type() != typ {
		return Incomparable
	}

	switch av := a.(type) {
	case schema.UInt:
		return compareAs(av, b)
	case schema.Int:
		return compareAs(av, b)
	case schema.Char:
		return compareAs(av, b)
	case schema.Float:
		return compareAs(av, b)
	case schema.Double:
		return compareAs(av, b)
	case schema.String:
		return compareAs(av, b)
	case schema.Record:
		bv, ok := b.(schema.Record)
		if !ok {
			return Incomparable
		}
		return compareOrdered(av.Value, bv.Value)
	default:
		return Incomparable
	}
}

func compareAs[V constraints.Ordered](a V, b schema.Value) Ordering {
	bv, ok := any(b).(V)
	if !ok {
		return Incomparable
	}
	return compareOrdered(a, bv)
}

// Holds reports whether an ordering satisfies the operand.
func Holds(op query.CondOperand, o Ordering) bool {
	switch op {
	case query.EQ:
		return o == Equal
	case query.GT:
		return o == Greater
	case query.LT:
		return o == Less
	default:
		return false
	}
}

// Matcher tests one stored cell against a fixed operand.
type Matcher func(cell schema.Value) bool

func never(schema.Value) bool { return false }

// NewMatcher resolves the operand once so scans only pay a type assertion
// per cell. An operand of another type than typ never matches.
func NewMatcher(typ schema.FieldType, op query.CondOperand, operand schema.Value) Matcher {
	operand = schema.Clone(operand)
	if operand == nil || operand.Type() != typ {
		return never
	}

	switch op {
	case query.EQ, query.GT, query.LT:
	default:
		return never
	}

	switch o := operand.(type) {
	case schema.UInt:
		return typedMatcher(op, o)
	case schema.Int:
		return typedMatcher(op, o)
	case schema.Char:
		return typedMatcher(op, o)
	case schema.Float:
		return typedMatcher(op, o)
	case schema.Double:
		return typedMatcher(op, o)
	case schema.String:
		return typedMatcher(op, o)
	case schema.Record:
		return func(cell schema.Value) bool {
			r, ok := cell.(schema.Record)
			return ok && Holds(op, compareOrdered(r.Value, o.Value))
		}
	default:
		return never
	}
}

func typedMatcher[V constraints.Ordered](op query.CondOperand, operand V) Matcher {
	return func(cell schema.Value) bool {
		v, ok := any(cell).(V)
		return ok && Holds(op, compareOrdered(v, operand))
	}
}
