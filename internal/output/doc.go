// Package output provides structured output and error handling for the
// shareplan CLI.
//
// The Printer is the single path for command output. It switches between
// human-readable text (lipgloss-styled when attached to a TTY) and JSON
// mode based on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Exported 12 month(s)"})
//	printer.Error(err)
//	printer.Print("Exported %d month(s) to %s\n", n, path)
//
// # Exit codes
//
// Errors carry exit codes matching the failure taxonomy:
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: configuration error (missing workbook, sheet, or tasks file)
//	output.ExitSystemError // 2: system error (I/O failure, unwritable output)
//
// Data-quality anomalies (broken cell references) are never errors; they are
// collected during parsing and surfaced in the export summary instead.
package output
