package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
)

// probeDate is the fixed reference date used to detect layouts the time
// package cannot interpret: formatting it with a token-free layout echoes
// the layout string back unchanged.
var probeDate = time.Date(2015, time.March, 7, 11, 6, 39, 0, time.UTC)

// FormatFunc turns a raw label or value into display text.
type FormatFunc func(v any) string

// CompileFormat compiles a format pattern into a reusable formatter.
// Patterns containing '#' are number formats (humanize style, e.g.
// "#,###.##"); everything else is treated as a Go time layout. A layout
// that degenerates to echoing itself is a no-op and yields nil, as does an
// empty pattern.
func CompileFormat(pattern string) FormatFunc {
	if pattern == "" {
		return nil
	}

	if strings.Contains(pattern, "#") {
		return numberFormatter(pattern)
	}

	return timeFormatter(pattern)
}

func numberFormatter(pattern string) FormatFunc {
	return func(v any) string {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return humanize.FormatFloat(pattern, f)
	}
}

func timeFormatter(layout string) FormatFunc {
	if probeDate.Format(layout) == layout {
		return nil
	}

	return func(v any) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format(layout)
		default:
			parsed, err := cast.ToTimeE(v)
			if err != nil {
				return fmt.Sprint(v)
			}

			return parsed.Format(layout)
		}
	}
}

// LabelFormat returns the compiled label formatter, or nil when labels
// pass through unformatted.
func (b *Base) LabelFormat() FormatFunc {
	return b.opts.LabelFormat
}

// SetLabelFormat compiles and stores the label format pattern. A pattern
// the formatter cannot interpret clears the option instead of keeping a
// broken formatter.
func (b *Base) SetLabelFormat(pattern string) *Base {
	b.opts.LabelFormat = b.compileFormat("labelFormat", pattern)

	return b
}

// ValuesFormat returns the compiled values formatter, or nil.
func (b *Base) ValuesFormat() FormatFunc {
	return b.opts.ValuesFormat
}

// SetValuesFormat compiles and stores the values format pattern with the
// same fail-safe as SetLabelFormat.
func (b *Base) SetValuesFormat(pattern string) *Base {
	b.opts.ValuesFormat = b.compileFormat("valuesFormat", pattern)

	return b
}

func (b *Base) compileFormat(option, pattern string) FormatFunc {
	fn := CompileFormat(pattern)
	if fn == nil && pattern != "" {
		b.log.Warn("format pattern rejected", "option", option, "pattern", pattern)
	}

	return fn
}
