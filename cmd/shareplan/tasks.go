// Package main provides the entry point for the shareplan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shareplan/internal/config"
	"shareplan/internal/output"
	"shareplan/internal/tasks"
)

// defaultTasksFile is the built-in checklist location.
const defaultTasksFile = "docs/tasks.md"

// newTasksCmd creates the tasks command.
func newTasksCmd() *cobra.Command {
	var fileFlag string
	var searchFlag string
	var nextFlag bool
	var includeCompletedFlag bool

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks from the project checklist",
		Long: `List tasks from the project checklist document.

Completed tasks are hidden by default. Tasks are printed in document
order with their body lines as bullets.

Examples:
  shareplan tasks                          # All open tasks
  shareplan tasks --next                   # Only the next open task
  shareplan tasks --include-completed      # Everything, done or not
  shareplan tasks --search savings         # Tasks mentioning "savings"
  shareplan tasks --json                   # Structured output`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTasks(cmd, fileFlag, searchFlag, nextFlag, includeCompletedFlag)
		},
	}

	cmd.Flags().StringVar(&fileFlag, "file", "", fmt.Sprintf("Path to the tasks checklist (default %q)", defaultTasksFile))
	cmd.Flags().StringVar(&searchFlag, "search", "", "Only show tasks containing the string (case-insensitive)")
	cmd.Flags().BoolVar(&nextFlag, "next", false, "Show only the next matching task")
	cmd.Flags().BoolVar(&includeCompletedFlag, "include-completed", false, "Include completed tasks")

	return cmd
}

// runTasks executes the tasks command.
func runTasks(cmd *cobra.Command, fileFlag, searchFlag string, nextFlag, includeCompletedFlag bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	cfg, err := config.Load()
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	path := resolveSetting(fileFlag, cfg.TasksFile, defaultTasksFile)
	if _, err := os.Stat(path); err != nil {
		userErr := output.NewUserError(fmt.Sprintf("tasks file not found at %s", path))
		printer.Error(userErr)
		return userErr
	}

	list, err := tasks.Load(path)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("reading tasks file", err)
		printer.Error(sysErr)
		return sysErr
	}

	filter := tasks.Filter{
		IncludeCompleted: includeCompletedFlag,
		Search:           searchFlag,
		Next:             nextFlag,
	}
	matched := filter.Apply(list)

	if isJSONMode(cmd) {
		return printer.WriteJSON(matched)
	}

	if len(matched) == 0 {
		printer.Println("No tasks found.")
		return nil
	}
	for _, task := range matched {
		printer.Println(tasks.Format(task))
		printer.Println()
	}
	return nil
}
