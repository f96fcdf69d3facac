package ops

import "github.com/Samy2700/CDataFrame2/schema"

type Bounds struct {
	Min schema.Value
	Max schema.Value
}

// Morph widens b with a single cell. It reports whether b changed.
func (b *Bounds) Morph(typ schema.FieldType, v schema.Value) bool {
	if v == nil {
		return false
	}

	if b.Min == nil || b.Max == nil {
		if Compare(typ, v, v) != Equal {
			// NaN or wrong variant
			return false
		}
		b.Min, b.Max = v, v
		return true
	}

	changes := 0

	if Compare(typ, v, b.Min) == Less {
		b.Min = v
		changes += 1
	}
	if Compare(typ, v, b.Max) == Greater {
		b.Max = v
		changes += 1
	}

	return changes != 0
}

// GetMaxMin scans cells for the smallest and largest comparable values.
// ok is false when no cell is comparable.
func GetMaxMin(cells []schema.Value, typ schema.FieldType) (bounds Bounds, ok bool) {
	for _, v := range cells {
		bounds.Morph(typ, v)
	}
	return bounds, bounds.Min != nil
}
