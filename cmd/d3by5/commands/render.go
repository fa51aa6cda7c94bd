// Package commands implements the d3by5 CLI subcommands.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kartoteket/d3by5-bar-graph/internal/chartspec"
)

const (
	renderCmdUse      = "render <spec.yaml>"
	renderCmdShort    = "Render a chart spec as an HTML chart"
	renderArgCount    = 1
	renderOutputFlag  = "output"
	renderOutputShort = "o"
	renderOutputUsage = "output HTML file"
	renderFilePerm    = 0o600
)

// ErrNoOutputFile is returned when the --output flag is not set.
var ErrNoOutputFile = errors.New("output file is required (use --output)")

// NewRenderCommand creates the render subcommand.
func NewRenderCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   renderCmdUse,
		Short: renderCmdShort,
		Args:  cobra.ExactArgs(renderArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			if outputFile == "" {
				return ErrNoOutputFile
			}

			return runRender(args[0], outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, renderOutputFlag, renderOutputShort, "", renderOutputUsage)

	return cmd
}

func runRender(specPath, outputFile string) error {
	spec, loadErr := chartspec.Load(specPath)
	if loadErr != nil {
		return fmt.Errorf("loading chart spec: %w", loadErr)
	}

	bar, buildErr := chartspec.Build(spec)
	if buildErr != nil {
		return fmt.Errorf("building chart: %w", buildErr)
	}

	out, createErr := os.OpenFile(outputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, renderFilePerm)
	if createErr != nil {
		return fmt.Errorf("creating output file: %w", createErr)
	}
	defer out.Close()

	renderErr := bar.Render(out)
	if renderErr != nil {
		return fmt.Errorf("rendering chart: %w", renderErr)
	}

	slog.Info("chart rendered", "spec", specPath, "output", outputFile)

	return nil
}
