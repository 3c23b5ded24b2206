package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/sillaba/internal/syllable"
)

// Check names.
const (
	CheckMarked      = "marked"
	CheckCount       = "count"
	CheckBlank       = "blank"
	CheckReconstruct = "reconstruct"
	CheckArithmetic  = "arithmetic"
)

// CheckError is returned when a line check fails.
type CheckError struct {
	Check    string // Check name for categorization
	Line     int    // 1-based line number within the case
	Text     string // Input line
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	return fmt.Sprintf("line %d %q: %s: expected %s, got %s",
		e.Line, e.Text, e.Check, e.Expected, e.Actual)
}

// CheckLine compares a produced line against its expectations and the
// invariants every marked line must satisfy. Returns all failures.
func CheckLine(n int, want LineCase, got syllable.LineResult, sep string) []error {
	var errs []error
	fail := func(check, expected, actual string) {
		errs = append(errs, &CheckError{
			Check:    check,
			Line:     n,
			Text:     want.Text,
			Expected: expected,
			Actual:   actual,
		})
	}

	if want.Blank != nil && *want.Blank != got.Blank {
		fail(CheckBlank, fmt.Sprintf("blank=%t", *want.Blank), fmt.Sprintf("blank=%t", got.Blank))
	}
	if want.Marked != nil && *want.Marked != got.Marked {
		fail(CheckMarked, fmt.Sprintf("%q", *want.Marked), fmt.Sprintf("%q", got.Marked))
	}
	if want.Count != nil && *want.Count != got.Count {
		fail(CheckCount, fmt.Sprint(*want.Count), fmt.Sprint(got.Count))
	}

	if got.Blank {
		return errs
	}

	// Glyphs already in the text survive marking, so they are set aside on
	// both sides.
	inText := strings.Count(want.Text, sep)

	if inText == 0 {
		words := strings.Join(strings.Fields(want.Text), " ")
		if stripped := syllable.Strip(got.Marked, sep); stripped != words {
			fail(CheckReconstruct, fmt.Sprintf("%q", words), fmt.Sprintf("%q", stripped))
		}
	}
	if boundaries := strings.Count(got.Marked, sep) - inText; got.Count != boundaries+1 {
		fail(CheckArithmetic, fmt.Sprintf("count %d", boundaries+1), fmt.Sprintf("count %d", got.Count))
	}

	return errs
}
