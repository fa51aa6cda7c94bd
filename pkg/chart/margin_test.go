package chart_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kartoteket/d3by5-bar-graph/pkg/chart"
)

func TestNewMargin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		want   chart.Margin
	}{
		{
			name:   "single value applies to all sides",
			values: []float64{5},
			want:   chart.Margin{Top: 5, Right: 5, Bottom: 5, Left: 5},
		},
		{
			name:   "pair is vertical then horizontal",
			values: []float64{5, 10},
			want:   chart.Margin{Top: 5, Right: 10, Bottom: 5, Left: 10},
		},
		{
			name:   "four values are top right bottom left",
			values: []float64{1, 2, 3, 4},
			want:   chart.Margin{Top: 1, Right: 2, Bottom: 3, Left: 4},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := chart.NewMargin(tt.values...)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewMarginBadArity(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 3, 5} {
		_, err := chart.NewMargin(make([]float64, n)...)
		require.ErrorIs(t, err, chart.ErrMarginArity, "arity %d must fail", n)
	}
}

func TestSetMarginPassthrough(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()
	m := chart.Margin{Top: 1, Right: 2, Bottom: 3, Left: 4}

	require.Same(t, b, b.SetMargin(m))
	require.Equal(t, m, b.Margin())
}

func TestSetMarginValues(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()
	b.SetMarginValues(5, 10)

	require.Equal(t, chart.Margin{Top: 5, Right: 10, Bottom: 5, Left: 10}, b.Margin())
}

func TestSetMarginValuesBadArityKeepsPrior(t *testing.T) {
	t.Parallel()

	b, handler := newRecordedBase(t)
	b.SetMarginValues(7)

	got := b.SetMarginValues(1, 2, 3)

	require.Same(t, b, got)
	require.Equal(t, chart.Margin{Top: 7, Right: 7, Bottom: 7, Left: 7}, b.Margin())
	require.Equal(t, 1, handler.count())
}
