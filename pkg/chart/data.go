package chart

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

// ErrEmptyRow is returned when a data row carries no values.
var ErrEmptyRow = errors.New("data row needs a label and at least one value")

// Datum is one labelled entry in a chart's dataset.
type Datum struct {
	Label  string
	Values []float64
	Color  string // Optional, resolved through the color accessor when empty.
}

// Dataset is the normalized chart data.
type Dataset struct {
	Data []Datum
}

// ParseData normalizes loose rows into a Dataset. Each row is a label
// followed by one or more numeric values; labels and numbers are coerced
// from whatever the caller supplies.
func ParseData(rows [][]any) (*Dataset, error) {
	ds := &Dataset{Data: make([]Datum, 0, len(rows))}

	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyRow, i)
		}

		label, labelErr := cast.ToStringE(row[0])
		if labelErr != nil {
			return nil, fmt.Errorf("parse row %d label: %w", i, labelErr)
		}

		values := make([]float64, 0, len(row)-1)

		for j, cell := range row[1:] {
			v, valErr := cast.ToFloat64E(cell)
			if valErr != nil {
				return nil, fmt.Errorf("parse row %d value %d: %w", i, j, valErr)
			}

			values = append(values, v)
		}

		ds.Data = append(ds.Data, Datum{Label: label, Values: values})
	}

	return ds, nil
}

// Data returns the current dataset, or nil when none is assigned.
func (b *Base) Data() *Dataset {
	return b.opts.Data
}

// SetData assigns the dataset. A palette waiting for data is bound now,
// and the update hook runs if one is set.
func (b *Base) SetData(ds *Dataset) *Base {
	b.opts.Data = ds

	if b.pendingPalette != nil && ds != nil {
		b.opts.Color = bindPalette(b.pendingPalette, ds)
		b.pendingPalette = nil
	}

	if b.updateHook != nil {
		b.updateHook(ds)
	}

	return b
}

// SetUpdateHook registers an optional callback invoked after every SetData.
// Concrete chart types use it to recompute derived state.
func (b *Base) SetUpdateHook(hook func(*Dataset)) *Base {
	b.updateHook = hook

	return b
}
