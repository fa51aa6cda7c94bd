package chart

// ColorFunc resolves the color for a datum. Constant colors, caller-built
// accessors and data-bound palette lookups all share this shape.
type ColorFunc func(d Datum, i int) string

// ConstantColor returns a ColorFunc that always yields the given color.
// A datum's own explicit color still wins.
func ConstantColor(color string) ColorFunc {
	return func(d Datum, _ int) string {
		if d.Color != "" {
			return d.Color
		}

		return color
	}
}

// bindPalette derives a per-datum lookup bound to the given dataset:
// each datum gets the palette color at its position, wrapping when the
// palette is shorter than the data. Lookup is by label so the assignment
// stays stable when the caller re-orders slices of the same data.
func bindPalette(palette []string, ds *Dataset) ColorFunc {
	byLabel := make(map[string]string, len(ds.Data))

	for i, d := range ds.Data {
		byLabel[d.Label] = palette[i%len(palette)]
	}

	return func(d Datum, i int) string {
		if d.Color != "" {
			return d.Color
		}

		if c, ok := byLabel[d.Label]; ok {
			return c
		}

		return palette[i%len(palette)]
	}
}

// Color returns the current color accessor.
func (b *Base) Color() ColorFunc {
	return b.opts.Color
}

// SetColor stores a constant color.
func (b *Base) SetColor(color string) *Base {
	b.opts.Color = ConstantColor(color)
	b.pendingPalette = nil

	return b
}

// SetColorFunc stores a caller-built color accessor as-is.
func (b *Base) SetColorFunc(fn ColorFunc) *Base {
	b.opts.Color = fn
	b.pendingPalette = nil

	return b
}

// UseThemePalette requests data-driven coloring from the current theme's
// primary palette.
func (b *Base) UseThemePalette() *Base {
	return b.SetColorPalette(GetPalette(b.opts.Theme).Primary)
}

// SetColorPalette requests data-driven coloring. With data already
// assigned the lookup is bound immediately; otherwise the raw palette is
// held and bound by the next SetData.
func (b *Base) SetColorPalette(palette []string) *Base {
	if len(palette) == 0 {
		b.log.Warn("color palette rejected", "reason", "empty palette")

		return b
	}

	if b.opts.Data != nil {
		b.opts.Color = bindPalette(palette, b.opts.Data)
		b.pendingPalette = nil

		return b
	}

	b.pendingPalette = palette

	return b
}
