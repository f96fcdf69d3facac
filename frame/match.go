package frame

import (
	"fmt"

	"github.com/Samy2700/CDataFrame2/lists"
	"github.com/Samy2700/CDataFrame2/query"
	"go.uber.org/zap"
)

// MatchRows returns, in ascending order, the rows whose cells satisfy
// every condition. Each condition names its column by title; an argument
// of another type than the column matches nothing. Without conditions no
// row is returned.
func (df *DataFrame) MatchRows(conds ...query.FilterCondition) ([]int, error) {
	merger := lists.NewUnmerged()

	for _, cond := range conds {
		col, _, found := df.ColumnByTitle(cond.Column)
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrNoColumn, cond.Column)
		}

		if merger.Empty() {
			continue
		}

		merger.With(col.Filter(cond.Operand, cond.Argument))
	}

	rows := merger.Indices()

	df.log.Debug("rows matched",
		zap.Int("conditions", len(conds)),
		zap.Int("merges", merger.Merges()),
		zap.Int("rows", len(rows)),
	)

	return rows, nil
}
