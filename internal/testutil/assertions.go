package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertFloorReport checks that the report written by a run contains the
// block for the named floor with the given counts.
func AssertFloorReport(t *testing.T, result *HarnessResult, floor string, reachable, removed int) {
	t.Helper()

	expected := fmt.Sprintf("floor %q:\n - reachable: %d\n - removed: %d\n", floor, reachable, removed)
	require.True(t,
		strings.Contains(result.Output, expected),
		"report for floor %q with reachable=%d removed=%d was not found in output:\n%s", floor, reachable, removed, result.Output,
	)
}

// AssertRoundLogged checks the log output for a finished removal round of
// the named floor. It relies on the floor attribute the app attaches to
// every engine record.
func AssertRoundLogged(t *testing.T, result *HarnessResult, floor string, round, removed, remaining int) {
	t.Helper()

	expectedLogSubstring := fmt.Sprintf("floor=%s round=%d removed=%d remaining=%d", floor, round, removed, remaining)

	require.True(t,
		strings.Contains(result.LogOutput, expectedLogSubstring),
		"expected log output for round %d of floor %q was not found in logs", round, floor,
	)
}

// FloorsReported returns the floor names in the order their reports appear
// in the output.
func FloorsReported(result *HarnessResult) []string {
	var names []string
	for _, line := range strings.Split(result.Output, "\n") {
		name, ok := strings.CutPrefix(line, "floor ")
		if !ok {
			continue
		}
		names = append(names, strings.Trim(strings.TrimSuffix(name, ":"), `"`))
	}
	return names
}
