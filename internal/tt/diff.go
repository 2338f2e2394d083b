package tt

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffStrings returns a unified diff between want and got, for readable
// failure output on multi-line comparisons like prompts and transcripts.
// Returns "" when the strings are equal.
func DiffStrings(want, got string) string {
	if want == got {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("diff failed: %v", err)
	}
	return text
}
