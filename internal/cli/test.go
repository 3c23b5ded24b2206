package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sillaba/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // case filter (glob pattern)
}

// CaseResult holds the result of a single case file.
type CaseResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Total  int          `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <cases-dir>",
		Short: "Run syllabification case files",
		Long: `Run YAML case files that pin the marked output of lines.

Every line is checked against its expected marked text and count, and
against the invariants every marked line satisfies. When a golden file
exists next to a case (golden/<case>.golden) the full output must match it.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (invalid paths, etc.)

Examples:
  sillaba test ./cases
  sillaba test ./cases --filter "elision*"
  sillaba test ./cases --update
  sillaba test ./cases --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter cases by glob pattern")

	return cmd
}

func runTests(opts *TestOptions, casesDir string, cmd *cobra.Command) error {
	if _, err := os.Stat(casesDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("cases directory not found: %s", casesDir))
	}

	caseFiles, err := findCaseFiles(casesDir, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find cases", err)
	}

	if len(caseFiles) == 0 {
		if opts.Format == "json" {
			return outputTestJSON(cmd, TestResult{
				Cases: []CaseResult{},
				Total: 0,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No cases found.")
		return nil
	}

	result := TestResult{
		Cases: make([]CaseResult, 0, len(caseFiles)),
		Total: len(caseFiles),
	}

	for _, caseFile := range caseFiles {
		caseResult := runCase(caseFile, opts, cmd)
		result.Cases = append(result.Cases, caseResult)

		if caseResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		return outputTestJSON(cmd, result)
	}

	return outputTestText(cmd, result)
}

// findCaseFiles finds all YAML case files in a directory, skipping the
// golden and lexicons subdirectories. Results are sorted by path.
func findCaseFiles(dir string, filter string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != dir && (info.Name() == "golden" || info.Name() == "lexicons") {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	sort.Strings(files)
	return files, err
}

// runCase executes a single case file and returns the result.
func runCase(caseFile string, opts *TestOptions, cmd *cobra.Command) CaseResult {
	w := cmd.OutOrStdout()
	text := opts.Format != "json"
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	fail := func(name string, errs ...string) CaseResult {
		if text {
			fmt.Fprintf(w, "✗ %s\n", name)
			for _, e := range errs {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
		return CaseResult{Name: name, Pass: false, Errors: errs}
	}
	pass := func(name, note string) CaseResult {
		if text {
			fmt.Fprintf(w, "✓ %s%s\n", name, note)
		}
		return CaseResult{Name: name, Pass: true}
	}

	c, err := harness.LoadCase(caseFile)
	if err != nil {
		return fail(filepath.Base(caseFile), fmt.Sprintf("failed to load case: %v", err))
	}

	result, err := harness.Run(cmd.Context(), c, logger)
	if err != nil {
		return fail(c.Name, fmt.Sprintf("execution failed: %v", err))
	}

	if opts.Update {
		if err := harness.WriteGolden(caseFile, result); err != nil {
			return fail(c.Name, fmt.Sprintf("failed to update golden file: %v", err))
		}
		if !result.Pass {
			return fail(c.Name, result.Errors...)
		}
		return pass(c.Name, " (golden updated)")
	}

	match, exists, err := harness.CompareGolden(caseFile, result)
	if err != nil {
		return fail(c.Name, fmt.Sprintf("golden comparison failed: %v", err))
	}
	if exists && !match {
		errs := append([]string{"output does not match golden file (run with --update to regenerate)"}, result.Errors...)
		return fail(c.Name, errs...)
	}

	if !result.Pass {
		return fail(c.Name, result.Errors...)
	}
	return pass(c.Name, "")
}

// outputTestJSON outputs the test result as JSON.
func outputTestJSON(cmd *cobra.Command, result TestResult) error {
	status := "ok"
	if result.Failed > 0 {
		status = "error"
	}

	response := CLIResponse{
		Status: status,
		Data:   result,
	}

	if result.Failed > 0 {
		response.Error = &CLIError{
			Code:    ErrCodeTestFailed,
			Message: fmt.Sprintf("%d case(s) failed", result.Failed),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		// Case failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}
	return nil
}

// outputTestText outputs the test result as text.
func outputTestText(cmd *cobra.Command, result TestResult) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		// Case failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All cases passed")
	return nil
}
