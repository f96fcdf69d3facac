package frame

import (
	"sync"
	"testing"

	"github.com/Samy2700/CDataFrame2/column"
	"github.com/Samy2700/CDataFrame2/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardedConcurrentWriters(t *testing.T) {
	g := NewGuarded(nil)
	require.NoError(t, g.Write(func(df *DataFrame) error {
		return df.AddColumn(column.New(schema.IntFieldType, "n"))
	}))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = g.Write(func(df *DataFrame) error {
					return df.AddRow(schema.Int(int32(w)))
				})
				g.Read(func(df *DataFrame) {
					_ = df.CountEqual(schema.Int(int32(w)))
				})
			}
		}(w)
	}
	wg.Wait()

	g.Read(func(df *DataFrame) {
		assert.Equal(t, 800, df.RowCount())
		assert.Equal(t, 100, df.CountEqual(schema.Int(3)))
	})
}
