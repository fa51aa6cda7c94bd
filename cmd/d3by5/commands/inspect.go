package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kartoteket/d3by5-bar-graph/internal/chartspec"
	"github.com/kartoteket/d3by5-bar-graph/pkg/barchart"
)

// NewInspectCommand creates the inspect subcommand.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <spec.yaml>",
		Short: "Show the effective options of a chart spec",
		Long: `Load a chart spec, apply it to a bar chart and print the resolved
options: defaults filled in, rejected values replaced, formats compiled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(specPath string) error {
	spec, loadErr := chartspec.Load(specPath)
	if loadErr != nil {
		return fmt.Errorf("loading chart spec: %w", loadErr)
	}

	bar, buildErr := chartspec.Build(spec)
	if buildErr != nil {
		return fmt.Errorf("building chart: %w", buildErr)
	}

	writeOptionsTable(bar)

	return nil
}

func writeOptionsTable(bar *barchart.Bar) {
	margin := bar.Margin()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Option", "Effective Value"})
	t.AppendRows([]table.Row{
		{"width", formatPx(bar.Width())},
		{"height", formatPx(bar.Height())},
		{"padding", strconv.FormatFloat(bar.Padding(), 'f', -1, 64)},
		{"margin", fmt.Sprintf("top %v, right %v, bottom %v, left %v",
			margin.Top, margin.Right, margin.Bottom, margin.Left)},
		{"theme", string(bar.Theme())},
		{"labelPosition", bar.LabelPosition()},
		{"labelAlign", bar.LabelAlign()},
		{"labelColor", orDefault(bar.LabelColor(), "(theme)")},
		{"labelFormat", formatState(bar.LabelFormat() != nil)},
		{"valuesPosition", bar.ValuesPosition()},
		{"valuesAlign", bar.ValuesAlign()},
		{"valuesColor", orDefault(bar.ValuesColor(), "(theme)")},
		{"valuesFormat", formatState(bar.ValuesFormat() != nil)},
		{"data", fmt.Sprintf("%d rows", len(bar.Data().Data))},
		{"listeners", listenerSummary(bar)},
	})
	t.Render()
}

func listenerSummary(bar *barchart.Bar) string {
	listeners := bar.Listeners()
	if len(listeners) == 0 {
		return "none"
	}

	actions := make([]string, len(listeners))
	for i, l := range listeners {
		actions[i] = l.Action
	}

	return strings.Join(actions, ", ")
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func formatState(compiled bool) string {
	if compiled {
		return "compiled"
	}

	return "none"
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
