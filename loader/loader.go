// Package loader reads table definitions and CLI settings from YAML.
package loader

import (
	"fmt"
	"os"

	"github.com/Samy2700/CDataFrame2/column"
	"github.com/Samy2700/CDataFrame2/frame"
	"github.com/Samy2700/CDataFrame2/logger"
	"github.com/Samy2700/CDataFrame2/schema"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File is the top level of a table file.
type File struct {
	Log     logger.Config `yaml:"log"`
	Frame   FrameSettings `yaml:"frame"`
	Columns []ColumnSpec  `yaml:"columns"`
}

type FrameSettings struct {
	ShrinkRatio       *float64 `yaml:"shrink_ratio"`
	MinColumnCapacity *int     `yaml:"min_column_capacity"`
}

// ColumnSpec lists a column's cells as text; a null entry is an absent
// cell.
type ColumnSpec struct {
	Title  string    `yaml:"title"`
	Type   string    `yaml:"type"`
	Values []*string `yaml:"values"`
}

func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read table file: %w", err)
	}

	f, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func Parse(content []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("invalid table file: %w", err)
	}
	return &f, nil
}

// FrameConfig merges the file's frame settings over the defaults.
func (f *File) FrameConfig(log *zap.Logger) frame.Config {
	config := frame.DefaultConfig()
	if f.Frame.ShrinkRatio != nil {
		config.ShrinkRatio = *f.Frame.ShrinkRatio
	}
	if f.Frame.MinColumnCapacity != nil {
		config.MinColumnCapacity = *f.Frame.MinColumnCapacity
	}
	if log != nil {
		config.Logger = log
	}
	return config
}

// Build creates the frame the file describes. Columns of different
// lengths are loaded as given.
func (f *File) Build(log *zap.Logger) (*frame.DataFrame, error) {
	df := frame.NewWithConfig(f.FrameConfig(log))

	for colIdx, spec := range f.Columns {
		col, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", colIdx, err)
		}

		if err := df.AddColumn(col); err != nil {
			return nil, err
		}
	}

	if !df.Aligned() && log != nil {
		log.Warn("loaded frame has columns of different lengths", zap.Strings("columns", df.Titles()))
	}

	return df, nil
}

func (spec ColumnSpec) build() (*column.Column, error) {
	typ, err := schema.ParseFieldType(spec.Type)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", spec.Title, err)
	}

	col := column.New(typ, spec.Title)

	for rowIdx, text := range spec.Values {
		var v schema.Value
		if text != nil {
			v, err = schema.ParseValue(typ, *text)
			if err != nil {
				return nil, fmt.Errorf("%q row %d: %w", spec.Title, rowIdx, err)
			}
		}

		if err := col.Insert(v); err != nil {
			return nil, fmt.Errorf("%q row %d: %w", spec.Title, rowIdx, err)
		}
	}

	return col, nil
}
