package query

import (
	"fmt"

	"github.com/Samy2700/CDataFrame2/schema"
)

// FilterCondition selects the cells of the column titled Column that
// stand in relation Operand to Argument.
type FilterCondition struct {
	Column   string
	Operand  CondOperand
	Argument schema.Value
}

func (fc FilterCondition) String() string {
	typ, ok := schema.TypeOf(fc.Argument)
	if !ok {
		return fmt.Sprintf("%s %s NULL", fc.Column, fc.Operand)
	}
	return fmt.Sprintf("%s %s %s", fc.Column, fc.Operand, schema.Format(typ, fc.Argument))
}

func Eq(column string, v schema.Value) FilterCondition {
	return FilterCondition{Column: column, Operand: EQ, Argument: v}
}

func Gt(column string, v schema.Value) FilterCondition {
	return FilterCondition{Column: column, Operand: GT, Argument: v}
}

func Lt(column string, v schema.Value) FilterCondition {
	return FilterCondition{Column: column, Operand: LT, Argument: v}
}
