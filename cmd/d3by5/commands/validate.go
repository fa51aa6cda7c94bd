package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kartoteket/d3by5-bar-graph/internal/chartspec"
)

// exitCodeValidationFailure is the exit code for validation failures.
const exitCodeValidationFailure = 2

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	var colorize, nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <spec.yaml|->",
		Short: "Validate a chart spec against the schema",
		Long: `Validate a chart spec file against the built-in spec schema.

Examples:
  d3by5 validate chart.yaml
  d3by5 validate - < chart.yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], colorize, nocolor)
		},
	}

	cmd.Flags().BoolVar(&colorize, "color", false, "force colored output")
	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(inputPath string, colorize, nocolor bool) error {
	// Color setup.
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	} else if colorize {
		color.NoColor = false //nolint:reassign // intentional override of library global
	}

	result, err := validateInput(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
		os.Exit(exitCodeValidationFailure)
	}

	if !result.Valid {
		color.Red("invalid: %s", inputLabel(inputPath))

		for _, finding := range result.Findings {
			fmt.Fprintf(os.Stderr, "  - %s\n", finding)
		}

		os.Exit(exitCodeValidationFailure)
	}

	color.Green("valid: %s", inputLabel(inputPath))

	return nil
}

func validateInput(inputPath string) (*chartspec.Result, error) {
	if inputPath != "-" {
		return chartspec.ValidateFile(inputPath)
	}

	raw, readErr := io.ReadAll(os.Stdin)
	if readErr != nil {
		return nil, fmt.Errorf("reading stdin: %w", readErr)
	}

	return chartspec.ValidateBytes(raw)
}

func inputLabel(inputPath string) string {
	if inputPath == "-" {
		return "<stdin>"
	}

	return inputPath
}
