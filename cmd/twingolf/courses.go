package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twin-golf/internal/registry"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List all available courses",
	Long: `Shows the built-in courses and any course files found in the
--courses directory.`,
	Args: cobra.NoArgs,
	RunE: runCourses,
}

func runCourses(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	courses := registry.List()

	if len(courses) == 0 {
		fmt.Fprintln(out, "No courses available.")
		return nil
	}

	fmt.Fprintln(out, "Available courses:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range courses {
		maxIDLen = max(maxIDLen, len(c.ID))
	}

	fmt.Fprintf(out, "  %-*s  %5s  %s\n", maxIDLen, "ID", "Holes", "Title")
	fmt.Fprintf(out, "  %-*s  %5s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, c := range courses {
		fmt.Fprintf(out, "  %-*s  %5d  %s\n", maxIDLen, c.ID, c.Levels, c.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'twingolf play <id>' to play a course.")
	return nil
}
