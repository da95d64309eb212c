// Package main provides the entry point for the shareplan CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shareplan/internal/config"
	"shareplan/internal/output"
	"shareplan/internal/planner"
	"shareplan/internal/seed"
	"shareplan/internal/workbook"
)

// Built-in defaults, overridable via config file or flags.
const (
	defaultWorkbook = "docs/Copy of Expense Shares.xlsx"
	defaultSheet    = "Planned Expenses"
	defaultOutput   = "data/seeds/planned-expenses.json"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var workbookFlag string
	var sheetFlag string
	var outputFlag string
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the planning worksheet to JSON seed data",
		Long: `Export the planning worksheet's month blocks to a JSON seed file.

Each month block yields its start date, bucket statuses, due dates, account
allocations, and any #REF! errors found along the way. The output is
validated against the seed schema before anything is written.

Examples:
  shareplan export                                  # Export with built-in defaults
  shareplan export --sheet "Planned Expenses"       # Pick a worksheet by name
  shareplan export --limit-months 3 --json          # First 3 months, JSON summary
  shareplan export --output /tmp/seed.json          # Write somewhere else`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, workbookFlag, sheetFlag, outputFlag, limitFlag)
		},
	}

	cmd.Flags().StringVar(&workbookFlag, "workbook", "", fmt.Sprintf("Path to the Excel workbook (default %q)", defaultWorkbook))
	cmd.Flags().StringVar(&sheetFlag, "sheet", "", fmt.Sprintf("Worksheet name to export (default %q)", defaultSheet))
	cmd.Flags().StringVar(&outputFlag, "output", "", fmt.Sprintf("Path for the JSON seed file (default %q)", defaultOutput))
	cmd.Flags().IntVar(&limitFlag, "limit-months", 0, "Export at most N month blocks (0 or less means all)")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, workbookFlag, sheetFlag, outputFlag string, limitFlag int) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	cfg, err := config.Load()
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	workbookPath := resolveSetting(workbookFlag, cfg.Workbook, defaultWorkbook)
	sheetName := resolveSetting(sheetFlag, cfg.Sheet, defaultSheet)
	outputPath := resolveSetting(outputFlag, cfg.Output, defaultOutput)

	wb, err := workbook.Open(workbookPath)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	sheet, err := wb.Sheet(sheetName)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	months, err := planner.ParseMonths(sheet, limitFlag)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("parsing worksheet", err)
		printer.Error(sysErr)
		return sysErr
	}

	if err := seed.Write(months, outputPath); err != nil {
		sysErr := output.NewSystemErrorWithCause("writing seed file", err)
		printer.Error(sysErr)
		return sysErr
	}

	refCount := seed.RefErrorCount(months)
	if isJSONMode(cmd) {
		return printer.Success(map[string]any{
			"months":     len(months),
			"output":     outputPath,
			"ref_errors": refCount,
		})
	}

	if err := printer.Success(map[string]any{
		"message": fmt.Sprintf("Exported %d month(s) to %s", len(months), outputPath),
	}); err != nil {
		return err
	}
	if refCount > 0 {
		printer.Warn("Detected %d cell(s) containing #REF! or Excel errors.", refCount)
	}
	return nil
}
