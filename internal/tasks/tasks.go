// Package tasks reads the project checklist document and extracts its
// heading-delimited task sections.
package tasks

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// headingRE matches actionable task headings, e.g. "### Task 12 – Title".
// The dash is the en dash the checklist document uses.
var headingRE = regexp.MustCompile(`^###\s+(Task\s+\d+\s+–\s+.+)$`)

// Status markers embedded in task titles.
const (
	completedMarker  = "*(Completed)*"
	inProgressMarker = "*(In Progress)*"
)

// Task is one heading-delimited section of the checklist.
type Task struct {
	Title string   `json:"title"`
	Body  []string `json:"body"`
}

// Completed reports whether the task title carries the completed marker.
func (t Task) Completed() bool {
	return strings.Contains(t.Title, completedMarker)
}

// InProgress reports whether the task title carries the in-progress marker.
func (t Task) InProgress() bool {
	return strings.Contains(t.Title, inProgressMarker)
}

// Parse extracts tasks from checklist lines. A heading opens a section;
// the non-empty lines that follow become its body until the next heading.
// Lines before the first heading are ignored.
func Parse(lines []string) []Task {
	var parsed []Task
	var current *Task

	for _, line := range lines {
		if m := headingRE.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			if current != nil {
				parsed = append(parsed, *current)
			}
			// Body starts empty, not nil, so JSON output is always an array.
			current = &Task{Title: m[1], Body: []string{}}
			continue
		}
		if current == nil {
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			current.Body = append(current.Body, trimmed)
		}
	}
	if current != nil {
		parsed = append(parsed, *current)
	}
	return parsed
}

// Load reads and parses the checklist at path.
func Load(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tasks file: %w", err)
	}
	return Parse(strings.Split(string(data), "\n")), nil
}

// Filter selects tasks for listing.
type Filter struct {
	// IncludeCompleted keeps tasks whose title carries the completed marker.
	IncludeCompleted bool
	// Search keeps tasks whose title or body contains the string,
	// case-insensitively. Empty means no search filtering.
	Search string
	// Next truncates the result to the first surviving task.
	Next bool
}

// Apply returns the tasks surviving the filter, in original order.
// The result is never nil.
func (f Filter) Apply(list []Task) []Task {
	out := make([]Task, 0, len(list))
	for _, task := range list {
		if !f.IncludeCompleted && task.Completed() {
			continue
		}
		if f.Search != "" && !task.matches(f.Search) {
			continue
		}
		out = append(out, task)
	}
	if f.Next && len(out) > 1 {
		out = out[:1]
	}
	return out
}

// matches reports whether the query appears in the title or any body line.
func (t Task) matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	for _, line := range t.Body {
		if strings.Contains(strings.ToLower(line), q) {
			return true
		}
	}
	return false
}

// Format renders a task for terminal display: the title followed by its
// body lines as indented bullets, with any leading bullet glyphs stripped.
func Format(t Task) string {
	var b strings.Builder
	b.WriteString(t.Title)
	b.WriteString("\n")

	if len(t.Body) == 0 {
		b.WriteString("  (No details provided.)")
		return b.String()
	}
	for i, item := range t.Body {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  - ")
		b.WriteString(strings.TrimSpace(strings.TrimLeft(item, "- ")))
	}
	return b.String()
}
