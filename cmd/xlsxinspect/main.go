// Package main provides the CLI entry point for xlsxinspect.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect"
	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect/models"
	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect/output"
)

type cliOptions struct {
	outputPath string
	sheetsDir  string
	format     string
	compact    bool
	sampleRows int
	noFormats  bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "xlsxinspect <workbook.xlsx>",
		Short: "Inspect an Excel workbook and report its structure as JSON",
		Long: `xlsxinspect opens an xlsx workbook and prints a structural summary:
sheet names, dimensions, frozen panes, column headers, merged ranges,
data-validation rules and a bounded sample of cell values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	cmd.Flags().StringVar(&opts.format, "format", "json", "Output format: json, toon, markdown")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Emit minified JSON instead of indented")
	cmd.Flags().IntVar(&opts.sampleRows, "sample-rows", inspect.DefaultSampleRows, "Maximum sampled rows per sheet")
	cmd.Flags().BoolVar(&opts.noFormats, "no-formats", false, "Omit cell formatting descriptors from the sample")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Debug logging to stderr")

	return cmd
}

func main() {
	rootCmd := newRootCmd()
	// Usage goes to stdout so that stderr stays reserved for inspection
	// errors.
	rootCmd.SetOut(os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (o *cliOptions) run(cmd *cobra.Command, path string) error {
	// Argument validation is done; from here on a failure is an inspection
	// error, not a usage error.
	cmd.SilenceUsage = true

	if o.format != "json" && o.format != "toon" && o.format != "markdown" {
		return fail(cmd, fmt.Errorf("invalid format: %s (must be json, toon, or markdown)", o.format))
	}

	logger := newLogger(o.verbose)
	defer logger.Sync()

	opts := inspect.Options{
		SampleRows: o.sampleRows,
		Logger:     logger,
	}
	if o.noFormats {
		include := false
		opts.IncludeFormats = &include
	}

	report, err := inspect.Inspect(path, opts)
	if err != nil {
		return fail(cmd, err)
	}

	var rendered []byte
	switch o.format {
	case "json":
		rendered, err = output.ToJSON(report, !o.compact)
	case "toon":
		var s string
		s, err = output.ToTOON(report)
		rendered = []byte(s)
	case "markdown":
		rendered = []byte(output.ToMarkdown(report))
	}
	if err != nil {
		return fail(cmd, err)
	}

	if o.outputPath != "" {
		if err := os.WriteFile(o.outputPath, rendered, 0644); err != nil {
			return fail(cmd, err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
	}

	if o.sheetsDir != "" {
		if err := o.writeSheetFiles(report); err != nil {
			return fail(cmd, err)
		}
	}
	return nil
}

// fail reports an inspection error on the command's error stream and hands
// the error back to cobra for the exit status.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error analyzing Excel file: %v\n", err)
	return err
}

func (o *cliOptions) writeSheetFiles(r *models.Report) error {
	if err := os.MkdirAll(o.sheetsDir, 0755); err != nil {
		return err
	}

	for _, sheetName := range r.SheetNames {
		jsonData, err := output.SheetToJSON(r.Sheets[sheetName], !o.compact)
		if err != nil {
			return err
		}

		filename := filepath.Join(o.sheetsDir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	return zap.New(core)
}
