// Package barchart draws bar graphs from a chart option store through
// go-echarts.
package barchart

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kartoteket/d3by5-bar-graph/pkg/chart"
)

// ErrNoData is returned when a bar chart is built without a dataset.
var ErrNoData = errors.New("bar chart has no data")

// Bar is a bar graph. It embeds the option store, so the full fluent
// accessor surface and the listener registry are available on it.
type Bar struct {
	*chart.Base

	title    string
	subtitle string

	// Widest datum decides how many grouped series get drawn.
	seriesCount int
}

// New creates a bar graph with default options.
func New() *Bar {
	b := &Bar{Base: chart.NewBase()}

	b.SetUpdateHook(b.updateData)

	return b
}

// SetTitle stores the chart title and subtitle.
func (b *Bar) SetTitle(title, subtitle string) *Bar {
	b.title = title
	b.subtitle = subtitle

	return b
}

// updateData recomputes derived state after every SetData.
func (b *Bar) updateData(ds *chart.Dataset) {
	b.seriesCount = 0

	if ds == nil {
		return
	}

	for _, d := range ds.Data {
		if len(d.Values) > b.seriesCount {
			b.seriesCount = len(d.Values)
		}
	}
}

// Build produces a configured go-echarts bar chart from the stored
// options.
func (b *Bar) Build() (*charts.Bar, error) {
	ds := b.Data()
	if ds == nil || len(ds.Data) == 0 {
		return nil, ErrNoData
	}

	theme := chart.GetThemeConfig(b.Theme())
	margin := b.Margin()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           pixels(b.Width()),
			Height:          pixels(b.Height()),
			BackgroundColor: theme.ChartBackground,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:         b.title,
			Subtitle:      b.subtitle,
			Left:          "center",
			TitleStyle:    &opts.TextStyle{Color: theme.ChartText},
			SubtitleStyle: &opts.TextStyle{Color: theme.ChartTextMuted},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithGridOpts(opts.Grid{
			Top:          pixels(margin.Top),
			Right:        pixels(margin.Right),
			Bottom:       pixels(margin.Bottom),
			Left:         pixels(margin.Left),
			ContainLabel: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Color: b.axisLabelColor(theme)},
			AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: theme.ChartAxis}},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			AxisLabel: &opts.AxisLabel{Color: theme.ChartTextMuted},
			AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: theme.ChartAxis}},
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Color: theme.ChartGrid},
			},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(b.seriesCount > 1),
			Top:       "bottom",
			Left:      "center",
			TextStyle: &opts.TextStyle{Color: theme.ChartTextMuted},
		}),
	)

	bar.SetXAxis(b.categoryLabels(ds))

	for j := 0; j < b.seriesCount; j++ {
		bar.AddSeries(seriesName(j, b.seriesCount), b.seriesData(ds, j), b.seriesOpts(theme)...)
	}

	if b.Padding() > 0 {
		bar.SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{
			BarGap: fmt.Sprintf("%d%%", int(b.Padding())),
		}))
	}

	return bar, nil
}

// Render builds the chart and writes it as HTML.
func (b *Bar) Render(w io.Writer) error {
	built, err := b.Build()
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}

	renderErr := built.Render(w)
	if renderErr != nil {
		return fmt.Errorf("rendering bar chart: %w", renderErr)
	}

	return nil
}

// categoryLabels returns the x-axis labels, run through the label
// formatter when one is set. Hidden labels still occupy their axis slot
// so the bars keep their positions.
func (b *Bar) categoryLabels(ds *chart.Dataset) []string {
	labels := make([]string, len(ds.Data))

	for i, d := range ds.Data {
		if b.LabelPosition() == chart.PositionNone {
			labels[i] = ""

			continue
		}

		labels[i] = d.Label
		if format := b.LabelFormat(); format != nil {
			labels[i] = format(d.Label)
		}
	}

	return labels
}

// seriesData builds one grouped series, coloring each bar through the
// color accessor and pre-rendering value text when a values format is set.
func (b *Bar) seriesData(ds *chart.Dataset, series int) []opts.BarData {
	colorOf := b.Color()
	format := b.ValuesFormat()

	data := make([]opts.BarData, len(ds.Data))

	for i, d := range ds.Data {
		var value float64
		if series < len(d.Values) {
			value = d.Values[series]
		}

		item := opts.BarData{Value: value}

		if colorOf != nil {
			item.ItemStyle = &opts.ItemStyle{Color: colorOf(d, i)}
		}

		if format != nil {
			item.Name = format(value)
		}

		data[i] = item
	}

	return data
}

// seriesOpts configures the per-bar value labels from the values options.
func (b *Bar) seriesOpts(theme chart.ThemeConfig) []charts.SeriesOpts {
	position := valuesPositionToECharts(b.ValuesPosition())
	if position == "" {
		return nil
	}

	color := b.ValuesColor()
	if color == "" {
		color = theme.ChartText
	}

	label := opts.Label{
		Show:     opts.Bool(true),
		Position: position,
		Color:    color,
	}

	// With a values format the display text was pre-rendered into the
	// item name; {b} selects it.
	if b.ValuesFormat() != nil {
		label.Formatter = "{b}"
	}

	return []charts.SeriesOpts{charts.WithLabelOpts(label)}
}

func (b *Bar) axisLabelColor(theme chart.ThemeConfig) string {
	if c := b.LabelColor(); c != "" {
		return c
	}

	return theme.ChartTextMuted
}

// valuesPositionToECharts maps the shared position constants onto ECharts
// label positions. PositionNone hides the labels entirely.
func valuesPositionToECharts(position string) string {
	switch position {
	case chart.PositionOutside:
		return "top"
	case chart.PositionInside, chart.PositionFit:
		return "inside"
	case chart.PositionAxis:
		return "insideBottom"
	default:
		return ""
	}
}

func seriesName(index, total int) string {
	if total == 1 {
		return "values"
	}

	return fmt.Sprintf("series %d", index+1)
}

func pixels(v float64) string {
	return fmt.Sprintf("%dpx", int(v))
}
