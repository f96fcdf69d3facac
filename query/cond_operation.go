package query

import (
	"fmt"
	"strings"
)

// CondOperand is the predicate a scan applies between a cell and the
// operand value.
type CondOperand byte

const (
	EQ CondOperand = iota
	GT
	LT
)

func (c CondOperand) String() string {
	switch c {
	case EQ:
		return "EQ"
	case GT:
		return "GT"
	case LT:
		return "LT"
	default:
		return fmt.Sprintf("CondOperand(%d)", byte(c))
	}
}

var ErrUnknownOperand = fmt.Errorf("unknown operand")

// ParseOperand accepts eq/gt/lt as well as the symbols =, ==, > and <.
func ParseOperand(s string) (CondOperand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eq", "=", "==":
		return EQ, nil
	case "gt", ">":
		return GT, nil
	case "lt", "<":
		return LT, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperand, s)
	}
}
