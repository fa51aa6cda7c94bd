package chart

import (
	"errors"
	"fmt"
)

// Margin arity constants for the CSS-style shorthand.
const (
	marginArityAll      = 1
	marginArityPairs    = 2
	marginArityExplicit = 4
)

// ErrMarginArity is returned when margin shorthand has an unsupported
// number of values (anything other than 1, 2 or 4).
var ErrMarginArity = errors.New("margin shorthand requires 1, 2 or 4 values")

// Margin is the canonical four-sided margin record. It is always fully
// populated; partial margins never exist.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// NewMargin normalizes CSS-style margin shorthand into a Margin:
// one value applies to all sides, two values are vertical then horizontal,
// four values are top, right, bottom, left.
func NewMargin(values ...float64) (Margin, error) {
	switch len(values) {
	case marginArityAll:
		v := values[0]

		return Margin{Top: v, Right: v, Bottom: v, Left: v}, nil
	case marginArityPairs:
		vertical, horizontal := values[0], values[1]

		return Margin{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}, nil
	case marginArityExplicit:
		return Margin{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}, nil
	default:
		return Margin{}, fmt.Errorf("%w: got %d", ErrMarginArity, len(values))
	}
}

// Margin returns the current margin record.
func (b *Base) Margin() Margin {
	return b.opts.Margin
}

// SetMargin stores an already-complete margin record.
func (b *Base) SetMargin(m Margin) *Base {
	b.opts.Margin = m

	return b
}

// SetMarginValues normalizes margin shorthand and stores the result.
// An unsupported arity keeps the prior margin and logs a diagnostic;
// the receiver is returned either way so chains are not broken.
func (b *Base) SetMarginValues(values ...float64) *Base {
	m, err := NewMargin(values...)
	if err != nil {
		b.log.Warn("margin rejected", "values", values, "error", err)

		return b
	}

	b.opts.Margin = m

	return b
}
