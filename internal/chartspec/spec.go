// Package chartspec loads and validates declarative chart spec files and
// applies them to the chart option surface.
package chartspec

import (
	"errors"
	"fmt"

	"github.com/kartoteket/d3by5-bar-graph/pkg/barchart"
	"github.com/kartoteket/d3by5-bar-graph/pkg/chart"
)

// Sentinel validation errors.
var (
	ErrNoData        = errors.New("chart spec has no data rows")
	ErrInvalidWidth  = errors.New("chart width must be positive")
	ErrInvalidHeight = errors.New("chart height must be positive")
	ErrEmptyLabel    = errors.New("data row label must not be empty")
	ErrNoValues      = errors.New("data row needs at least one value")
)

// Spec is a declarative chart description, usually loaded from YAML.
type Spec struct {
	Title    string    `mapstructure:"title"`
	Subtitle string    `mapstructure:"subtitle"`
	Width    float64   `mapstructure:"width"`
	Height   float64   `mapstructure:"height"`
	Padding  float64   `mapstructure:"padding"`
	Margin   []float64 `mapstructure:"margin"`
	Theme    string    `mapstructure:"theme"`
	Color    string    `mapstructure:"color"`
	Palette  []string  `mapstructure:"palette"`
	Labels   TextBlock `mapstructure:"labels"`
	Values   TextBlock `mapstructure:"values"`
	Data     []DataRow `mapstructure:"data"`
}

// TextBlock configures one text surface (category labels or value labels).
type TextBlock struct {
	Position string `mapstructure:"position"`
	Align    string `mapstructure:"align"`
	Color    string `mapstructure:"color"`
	Format   string `mapstructure:"format"`
}

// DataRow is one labelled entry in the spec's dataset.
type DataRow struct {
	Label  string    `mapstructure:"label"`
	Values []float64 `mapstructure:"values"`
	Color  string    `mapstructure:"color"`
}

// validate checks the structural constraints a loaded spec must satisfy.
func (s *Spec) validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, s.Width)
	}

	if s.Height <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidHeight, s.Height)
	}

	if len(s.Data) == 0 {
		return ErrNoData
	}

	if len(s.Margin) > 0 {
		_, marginErr := chart.NewMargin(s.Margin...)
		if marginErr != nil {
			return marginErr
		}
	}

	for i, row := range s.Data {
		if row.Label == "" {
			return fmt.Errorf("%w: row %d", ErrEmptyLabel, i)
		}

		if len(row.Values) == 0 {
			return fmt.Errorf("%w: row %d", ErrNoValues, i)
		}
	}

	return nil
}

// Apply drives the fluent option surface of a bar chart from the spec.
// Option-level rejections (unknown positions, dead format patterns) follow
// the accessor contract: they degrade to defaults with a logged
// diagnostic instead of failing the whole spec.
func Apply(s *Spec, b *barchart.Bar) {
	b.SetTitle(s.Title, s.Subtitle)
	b.SetWidth(s.Width).
		SetHeight(s.Height).
		SetPadding(s.Padding)

	if len(s.Margin) > 0 {
		b.SetMarginValues(s.Margin...)
	}

	if s.Theme != "" {
		b.SetTheme(chart.Theme(s.Theme))
	}

	applyTextBlock(b, s.Labels, labelSurface)
	applyTextBlock(b, s.Values, valuesSurface)

	// Palette before data so the pending palette binds against the
	// dataset the moment it arrives.
	switch {
	case len(s.Palette) > 0:
		b.SetColorPalette(s.Palette)
	case s.Color != "":
		b.SetColor(s.Color)
	}

	b.SetData(dataset(s.Data))
}

// Build constructs a fully configured bar chart from a validated spec.
func Build(s *Spec) (*barchart.Bar, error) {
	validateErr := s.validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid chart spec: %w", validateErr)
	}

	b := barchart.New()
	Apply(s, b)

	return b, nil
}

// Text surfaces a TextBlock can configure.
const (
	labelSurface  = "labels"
	valuesSurface = "values"
)

func applyTextBlock(b *barchart.Bar, block TextBlock, surface string) {
	if surface == labelSurface {
		if block.Position != "" {
			b.SetLabelPosition(block.Position)
		}

		if block.Align != "" {
			b.SetLabelAlign(block.Align)
		}

		b.SetLabelColor(block.Color)

		if block.Format != "" {
			b.SetLabelFormat(block.Format)
		}

		return
	}

	if block.Position != "" {
		b.SetValuesPosition(block.Position)
	}

	if block.Align != "" {
		b.SetValuesAlign(block.Align)
	}

	b.SetValuesColor(block.Color)

	if block.Format != "" {
		b.SetValuesFormat(block.Format)
	}
}

func dataset(rows []DataRow) *chart.Dataset {
	ds := &chart.Dataset{Data: make([]chart.Datum, len(rows))}

	for i, row := range rows {
		ds.Data[i] = chart.Datum{Label: row.Label, Values: row.Values, Color: row.Color}
	}

	return ds
}
