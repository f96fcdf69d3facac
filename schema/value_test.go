package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueTypes(t *testing.T) {
	cases := []struct {
		v    Value
		want FieldType
	}{
		{UInt(1), UintFieldType},
		{Int(-1), IntFieldType},
		{Char('x'), CharFieldType},
		{Float(1.5), FloatFieldType},
		{Double(2.5), DoubleFieldType},
		{String("s"), StringFieldType},
		{Record{ID: 1}, StructFieldType},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.v.Type())
		assert.True(t, c.want.Valid())
	}
}

func TestFieldTypeString(t *testing.T) {
	assert.Equal(t, "UInt", UintFieldType.String())
	assert.Equal(t, "Struct", StructFieldType.String())
	assert.Equal(t, "", FieldType(0).String())
	assert.False(t, FieldType(0).Valid())
	assert.False(t, FieldType(42).Valid())

	assert.True(t, DoubleFieldType.Numeric())
	assert.False(t, StringFieldType.Numeric())
	assert.False(t, CharFieldType.Numeric())
}

func TestCloneRecordPointer(t *testing.T) {
	src := &Record{ID: 7, Value: 1.25, Description: "first"}

	cloned := Clone(src)
	src.Description = "changed"

	rec, ok := cloned.(Record)
	require.True(t, ok)
	assert.Equal(t, "first", rec.Description)

	var nilRecord *Record
	assert.Nil(t, Clone(nilRecord))
	assert.Nil(t, Clone(nil))
}

func TestClonePointerVariants(t *testing.T) {
	u, i, c := UInt(1), Int(-2), Char('z')
	f, d, s := Float(1.5), Double(2.5), String("text")

	for _, tc := range []struct {
		in   Value
		want Value
	}{
		{&u, UInt(1)},
		{&i, Int(-2)},
		{&c, Char('z')},
		{&f, Float(1.5)},
		{&d, Double(2.5)},
		{&s, String("text")},
	} {
		assert.Equal(t, tc.want, Clone(tc.in))
	}

	cloned := Clone(&i)
	i = 40
	assert.Equal(t, Int(-2), cloned)

	for _, typedNil := range []Value{(*UInt)(nil), (*Int)(nil), (*Char)(nil), (*Float)(nil), (*Double)(nil), (*String)(nil)} {
		assert.Nil(t, Clone(typedNil))
	}

	_, ok := TypeOf((*Int)(nil))
	assert.False(t, ok)
}

func TestNewRecordClampsDescription(t *testing.T) {
	long := strings.Repeat("é", 80) // 160 bytes

	rec := NewRecord(1, 2, long)

	assert.LessOrEqual(t, len(rec.Description), DescriptionMaxLen)
	assert.True(t, strings.HasPrefix(long, rec.Description))
	assert.Equal(t, 98, len(rec.Description))

	short := NewRecord(1, 2, "ok")
	assert.Equal(t, "ok", short.Description)
}

func TestTypeOf(t *testing.T) {
	typ, ok := TypeOf(Int(3))
	assert.True(t, ok)
	assert.Equal(t, IntFieldType, typ)

	_, ok = TypeOf(nil)
	assert.False(t, ok)

	var nilRecord *Record
	_, ok = TypeOf(nilRecord)
	assert.False(t, ok)
}
