package chart_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kartoteket/d3by5-bar-graph/pkg/chart"
)

func TestParseData(t *testing.T) {
	t.Parallel()

	ds, err := chart.ParseData([][]any{
		{"alpha", 1},
		{"beta", "2.5", 3},
		{42, 7},
	})
	require.NoError(t, err)
	require.Len(t, ds.Data, 3)

	require.Equal(t, "alpha", ds.Data[0].Label)
	require.Equal(t, []float64{1}, ds.Data[0].Values)

	require.Equal(t, "beta", ds.Data[1].Label)
	require.Equal(t, []float64{2.5, 3}, ds.Data[1].Values)

	require.Equal(t, "42", ds.Data[2].Label, "labels are coerced to text")
}

func TestParseDataRejectsShortRow(t *testing.T) {
	t.Parallel()

	_, err := chart.ParseData([][]any{{"alpha"}})
	require.ErrorIs(t, err, chart.ErrEmptyRow)
}

func TestParseDataRejectsNonNumericValue(t *testing.T) {
	t.Parallel()

	_, err := chart.ParseData([][]any{{"alpha", "not-a-number"}})
	require.Error(t, err)
}

func TestSetDataRoundTrip(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()
	ds := testDataset()

	require.Same(t, b, b.SetData(ds))
	require.Same(t, ds, b.Data())
}

func TestSetDataRunsUpdateHook(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()

	var seen []*chart.Dataset

	b.SetUpdateHook(func(ds *chart.Dataset) {
		seen = append(seen, ds)
	})

	ds := testDataset()
	b.SetData(ds)
	b.SetData(nil)

	require.Len(t, seen, 2)
	require.Same(t, ds, seen[0])
	require.Nil(t, seen[1])
}

func TestSetDataWithoutHookIsFine(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()

	require.NotPanics(t, func() {
		b.SetData(testDataset())
	})
}
