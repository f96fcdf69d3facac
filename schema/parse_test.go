package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldType(t *testing.T) {
	for word, want := range map[string]FieldType{
		"uint":      UintFieldType,
		"INT":       IntFieldType,
		" char ":    CharFieldType,
		"float":     FloatFieldType,
		"double":    DoubleFieldType,
		"string":    StringFieldType,
		"struct":    StructFieldType,
		"structure": StructFieldType,
	} {
		got, err := ParseFieldType(word)
		require.NoError(t, err, word)
		assert.Equal(t, want, got, word)
	}

	_, err := ParseFieldType("decimal")
	assert.ErrorIs(t, err, ErrUnknownFieldType)
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		typ  FieldType
		text string
		want Value
	}{
		{UintFieldType, "7", UInt(7)},
		{IntFieldType, " -7 ", Int(-7)},
		{CharFieldType, "ß", Char('ß')},
		{CharFieldType, " b", Char('b')},
		{CharFieldType, " ", Char(' ')},
		{FloatFieldType, "1.5", Float(1.5)},
		{DoubleFieldType, "2.25", Double(2.25)},
		{StringFieldType, " spaced ", String(" spaced ")},
		{StructFieldType, "1,2.5", Record{ID: 1, Value: 2.5}},
		{StructFieldType, "1, 2.5, a, b", Record{ID: 1, Value: 2.5, Description: "a, b"}},
		{IntFieldType, "null", nil},
		{StringFieldType, "NULL", nil},
		{StringFieldType, `\NULL`, String("NULL")},
		{StringFieldType, `\\null`, String(`\null`)},
		{StringFieldType, `\other`, String(`\other`)},
	}

	for _, c := range cases {
		got, err := ParseValue(c.typ, c.text)
		require.NoError(t, err, c.text)
		assert.Equal(t, c.want, got, c.text)
	}
}

func TestParseValueErrors(t *testing.T) {
	cases := []struct {
		typ  FieldType
		text string
	}{
		{UintFieldType, "-1"},
		{IntFieldType, "abc"},
		{IntFieldType, "3000000000"},
		{CharFieldType, "ab"},
		{CharFieldType, ""},
		{CharFieldType, "  "},
		{CharFieldType, " a b "},
		{DoubleFieldType, "x"},
		{StructFieldType, "1"},
		{StructFieldType, "x,1"},
		{StructFieldType, "1,x"},
	}

	for _, c := range cases {
		_, err := ParseValue(c.typ, c.text)
		assert.ErrorIs(t, err, ErrInvalidValue, c.text)
	}

	_, err := ParseValue(FieldType(0), "1")
	assert.ErrorIs(t, err, ErrUnknownFieldType)
}
