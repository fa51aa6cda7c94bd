package barchart_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kartoteket/d3by5-bar-graph/pkg/barchart"
	"github.com/kartoteket/d3by5-bar-graph/pkg/chart"
)

func quarterData() *chart.Dataset {
	return &chart.Dataset{Data: []chart.Datum{
		{Label: "Q1", Values: []float64{120}},
		{Label: "Q2", Values: []float64{200}},
		{Label: "Q3", Values: []float64{150}},
		{Label: "Q4", Values: []float64{310}},
	}}
}

func groupedData() *chart.Dataset {
	return &chart.Dataset{Data: []chart.Datum{
		{Label: "north", Values: []float64{10, 20}},
		{Label: "south", Values: []float64{30, 40}},
	}}
}

func TestBuildSingleSeries(t *testing.T) {
	t.Parallel()

	b := barchart.New()
	b.SetData(quarterData())

	built, err := b.Build()
	require.NoError(t, err)
	require.NotNil(t, built)
	require.Len(t, built.MultiSeries, 1)
	require.Equal(t, "values", built.MultiSeries[0].Name)
}

func TestBuildGroupedSeries(t *testing.T) {
	t.Parallel()

	b := barchart.New()
	b.SetData(groupedData())

	built, err := b.Build()
	require.NoError(t, err)
	require.Len(t, built.MultiSeries, 2)
	require.Equal(t, "series 1", built.MultiSeries[0].Name)
	require.Equal(t, "series 2", built.MultiSeries[1].Name)
}

func TestBuildRaggedRowsPadWithZero(t *testing.T) {
	t.Parallel()

	b := barchart.New()
	b.SetData(&chart.Dataset{Data: []chart.Datum{
		{Label: "full", Values: []float64{1, 2}},
		{Label: "short", Values: []float64{3}},
	}})

	built, err := b.Build()
	require.NoError(t, err)
	require.Len(t, built.MultiSeries, 2)
}

func TestBuildWithoutDataFails(t *testing.T) {
	t.Parallel()

	_, err := barchart.New().Build()
	require.ErrorIs(t, err, barchart.ErrNoData)

	b := barchart.New()
	b.SetData(&chart.Dataset{})

	_, err = b.Build()
	require.ErrorIs(t, err, barchart.ErrNoData)
}

func TestBuildUsesStoredOptions(t *testing.T) {
	t.Parallel()

	b := barchart.New()
	b.SetWidth(800).SetHeight(600)
	b.SetData(quarterData())

	built, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "800px", built.Initialization.Width)
	require.Equal(t, "600px", built.Initialization.Height)
}

func TestFluentConfigurationThroughEmbeddedBase(t *testing.T) {
	t.Parallel()

	b := barchart.New()

	// The embedded option store keeps its chainable contract.
	b.SetTheme(chart.ThemeDark).
		SetValuesPosition(chart.PositionInside).
		SetMarginValues(10, 20).
		SetColor("#336699")

	require.Equal(t, chart.ThemeDark, b.Theme())
	require.Equal(t, chart.PositionInside, b.ValuesPosition())
	require.Equal(t, chart.Margin{Top: 10, Right: 20, Bottom: 10, Left: 20}, b.Margin())
}

func TestRenderWritesHTML(t *testing.T) {
	t.Parallel()

	b := barchart.New()
	b.SetTitle("Quarterly", "revenue")
	b.SetData(quarterData())

	var buf bytes.Buffer

	err := b.Render(&buf)
	require.NoError(t, err)

	html := buf.String()
	require.True(t, strings.Contains(html, "Quarterly"))
	require.True(t, strings.Contains(html, "echarts"))
}

func TestRenderWithoutDataFails(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := barchart.New().Render(&buf)
	require.ErrorIs(t, err, barchart.ErrNoData)
}
