package ops

import (
	"math"
	"testing"

	"github.com/Samy2700/CDataFrame2/query"
	"github.com/Samy2700/CDataFrame2/schema"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		typ  schema.FieldType
		a, b schema.Value
		want Ordering
	}{
		{"uint less", schema.UintFieldType, schema.UInt(1), schema.UInt(2), Less},
		{"int greater", schema.IntFieldType, schema.Int(3), schema.Int(-3), Greater},
		{"char code point", schema.CharFieldType, schema.Char('a'), schema.Char('b'), Less},
		{"float equal", schema.FloatFieldType, schema.Float(1.5), schema.Float(1.5), Equal},
		{"double", schema.DoubleFieldType, schema.Double(-0.5), schema.Double(0.5), Less},
		{"string bytes", schema.StringFieldType, schema.String("B"), schema.String("a"), Less},
		{"string prefix", schema.StringFieldType, schema.String("ab"), schema.String("a"), Greater},
		{"record by value only", schema.StructFieldType,
			schema.Record{ID: 1, Value: 2, Description: "x"},
			schema.Record{ID: 9, Value: 2, Description: "y"}, Equal},
		{"record ordering", schema.StructFieldType, schema.Record{ID: 9, Value: 1}, schema.Record{ID: 1, Value: 2}, Less},
		{"absent left", schema.IntFieldType, nil, schema.Int(1), Incomparable},
		{"absent right", schema.IntFieldType, schema.Int(1), nil, Incomparable},
		{"cross type", schema.IntFieldType, schema.Int(1), schema.UInt(1), Incomparable},
		{"type differs from operands", schema.DoubleFieldType, schema.Int(1), schema.Int(1), Incomparable},
		{"unsupported type", schema.FieldType(0), schema.Int(1), schema.Int(1), Incomparable},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Compare(c.typ, c.a, c.b))
		})
	}
}

func TestCompareNaNIsIncomparable(t *testing.T) {
	nan := math.NaN()

	assert.Equal(t, Incomparable, Compare(schema.DoubleFieldType, schema.Double(nan), schema.Double(1)))
	assert.Equal(t, Incomparable, Compare(schema.DoubleFieldType, schema.Double(1), schema.Double(nan)))
	assert.Equal(t, Incomparable, Compare(schema.DoubleFieldType, schema.Double(nan), schema.Double(nan)))
	assert.Equal(t, Incomparable, Compare(schema.FloatFieldType, schema.Float(float32(nan)), schema.Float(0)))
	assert.Equal(t, Incomparable, Compare(schema.StructFieldType, schema.Record{Value: nan}, schema.Record{Value: nan}))

	inf := math.Inf(1)
	assert.Equal(t, Greater, Compare(schema.DoubleFieldType, schema.Double(inf), schema.Double(1)))
}

func TestComparePointerOperands(t *testing.T) {
	y := schema.Int(2)
	var none *schema.Int

	assert.Equal(t, Less, Compare(schema.IntFieldType, schema.Int(1), &y))
	assert.Equal(t, Greater, Compare(schema.IntFieldType, &y, schema.Int(1)))
	assert.Equal(t, Incomparable, Compare(schema.IntFieldType, schema.Int(1), none))

	s := schema.String("b")
	assert.Equal(t, Incomparable, Compare(schema.IntFieldType, schema.Int(1), &s))
	assert.Equal(t, Less, Compare(schema.StringFieldType, schema.String("a"), &s))

	assert.True(t, NewMatcher(schema.IntFieldType, query.EQ, &y)(schema.Int(2)))
}

func TestHolds(t *testing.T) {
	assert.True(t, Holds(query.EQ, Equal))
	assert.True(t, Holds(query.GT, Greater))
	assert.True(t, Holds(query.LT, Less))

	for _, op := range []query.CondOperand{query.EQ, query.GT, query.LT} {
		assert.False(t, Holds(op, Incomparable), op.String())
	}
	assert.False(t, Holds(query.CondOperand(9), Equal))
}

func TestMatcherRejectsForeignOperands(t *testing.T) {
	assert.False(t, NewMatcher(schema.IntFieldType, query.EQ, nil)(schema.Int(0)))
	assert.False(t, NewMatcher(schema.IntFieldType, query.EQ, schema.UInt(0))(schema.Int(0)))
	assert.False(t, NewMatcher(schema.IntFieldType, query.CondOperand(7), schema.Int(0))(schema.Int(0)))

	match := NewMatcher(schema.IntFieldType, query.EQ, schema.Int(0))
	assert.True(t, match(schema.Int(0)))
	assert.False(t, match(nil))
	assert.False(t, match(schema.UInt(0)))
}

func TestOrderingString(t *testing.T) {
	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Incomparable", Incomparable.String())
}
