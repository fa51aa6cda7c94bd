// Package chart holds the option store shared by every d3by5 chart type:
// fluent accessors over a defaulted options struct, an ordered listener
// registry and the normalization rules for margins, colors and formats.
// Drawing stays with the concrete chart packages.
package chart

import (
	"log/slog"
)

// Default option values.
const (
	defaultWidth   = 640
	defaultHeight  = 400
	defaultPadding = 5
	defaultColor   = "#4682b4" // steelblue.
)

// Options is one chart's configuration. Every instance gets its own copy
// from DefaultOptions, so nested records are never shared across charts.
type Options struct {
	Width   float64
	Height  float64
	Padding float64
	Margin  Margin
	Theme   Theme

	Color ColorFunc
	Data  *Dataset

	LabelPosition string
	LabelAlign    string
	LabelColor    string
	LabelFormat   FormatFunc

	ValuesPosition string
	ValuesAlign    string
	ValuesColor    string
	ValuesFormat   FormatFunc
}

// DefaultOptions returns a fresh options struct with the documented
// defaults. Label and values colors default to empty, which drawing code
// resolves to the theme text color.
func DefaultOptions() Options {
	return Options{
		Width:          defaultWidth,
		Height:         defaultHeight,
		Padding:        defaultPadding,
		Margin:         Margin{},
		Theme:          ThemeLight,
		Color:          ConstantColor(defaultColor),
		LabelPosition:  PositionNone,
		LabelAlign:     AlignLeft,
		ValuesPosition: PositionOutside,
		ValuesAlign:    AlignCenter,
	}
}

// Base is the option store owned by a single chart instance. Concrete
// chart types embed it and inherit the accessor surface and the listener
// registry. A Base is not safe for concurrent use; each chart owns its
// store exclusively.
type Base struct {
	opts           Options
	listeners      []Listener
	pendingPalette []string
	updateHook     func(*Dataset)
	log            *slog.Logger
}

// NewBase creates an option store with default options.
func NewBase() *Base {
	return &Base{
		opts: DefaultOptions(),
		log:  slog.Default(),
	}
}

// SetLogger directs diagnostics for rejected writes to the given logger.
func (b *Base) SetLogger(log *slog.Logger) *Base {
	if log != nil {
		b.log = log
	}

	return b
}

// Options returns a copy of the current options.
func (b *Base) Options() Options {
	return b.opts
}

// Width returns the chart width in pixels.
func (b *Base) Width() float64 {
	return b.opts.Width
}

// SetWidth stores the chart width.
func (b *Base) SetWidth(w float64) *Base {
	b.opts.Width = w

	return b
}

// Height returns the chart height in pixels.
func (b *Base) Height() float64 {
	return b.opts.Height
}

// SetHeight stores the chart height.
func (b *Base) SetHeight(h float64) *Base {
	b.opts.Height = h

	return b
}

// Padding returns the padding between drawn shapes.
func (b *Base) Padding() float64 {
	return b.opts.Padding
}

// SetPadding stores the padding between drawn shapes.
func (b *Base) SetPadding(p float64) *Base {
	b.opts.Padding = p

	return b
}

// Theme returns the current theme.
func (b *Base) Theme() Theme {
	return b.opts.Theme
}

// SetTheme stores the theme. Unknown themes are rejected with a
// diagnostic and the prior theme is kept.
func (b *Base) SetTheme(theme Theme) *Base {
	var value string
	if b.setEnum("theme", string(theme), themes, &value) {
		b.opts.Theme = Theme(value)
	}

	return b
}

// LabelPosition returns the label placement.
func (b *Base) LabelPosition() string {
	return b.opts.LabelPosition
}

// SetLabelPosition stores the label placement, validated against the
// legal positions.
func (b *Base) SetLabelPosition(pos string) *Base {
	b.setEnum("labelPosition", pos, Positions, &b.opts.LabelPosition)

	return b
}

// LabelAlign returns the label alignment.
func (b *Base) LabelAlign() string {
	return b.opts.LabelAlign
}

// SetLabelAlign stores the label alignment, validated.
func (b *Base) SetLabelAlign(align string) *Base {
	b.setEnum("labelAlign", align, Alignments, &b.opts.LabelAlign)

	return b
}

// LabelColor returns the label color, empty meaning theme text color.
func (b *Base) LabelColor() string {
	return b.opts.LabelColor
}

// SetLabelColor stores the label color.
func (b *Base) SetLabelColor(color string) *Base {
	b.opts.LabelColor = color

	return b
}

// ValuesPosition returns the value-label placement.
func (b *Base) ValuesPosition() string {
	return b.opts.ValuesPosition
}

// SetValuesPosition stores the value-label placement, validated.
func (b *Base) SetValuesPosition(pos string) *Base {
	b.setEnum("valuesPosition", pos, Positions, &b.opts.ValuesPosition)

	return b
}

// ValuesAlign returns the value-label alignment.
func (b *Base) ValuesAlign() string {
	return b.opts.ValuesAlign
}

// SetValuesAlign stores the value-label alignment, validated.
func (b *Base) SetValuesAlign(align string) *Base {
	b.setEnum("valuesAlign", align, Alignments, &b.opts.ValuesAlign)

	return b
}

// ValuesColor returns the value-label color, empty meaning theme text color.
func (b *Base) ValuesColor() string {
	return b.opts.ValuesColor
}

// SetValuesColor stores the value-label color.
func (b *Base) SetValuesColor(color string) *Base {
	b.opts.ValuesColor = color

	return b
}
