package verify

import (
	"fmt"
	"strings"
)

// Summary returns a human-readable rendering of a Report.
func Summary(report *Report) string {
	var b strings.Builder

	b.WriteString("=== Verification Report ===\n\n")
	if report.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}

	b.WriteString("\n=== Checks ===\n")
	for i, res := range report.Results {
		status := "PASS"
		if !res.Satisfied {
			status = "FAIL"
		}
		if res.Details == "" {
			b.WriteString(fmt.Sprintf("  %d. [%s] %s\n", i+1, status, res.Name))
		} else {
			b.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, status, res.Name, res.Details))
		}
	}

	return b.String()
}
