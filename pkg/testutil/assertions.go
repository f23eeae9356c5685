package testutil

import (
	"fmt"
	"slices"
	"testing"
)

// formatMessage formats optional message arguments
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		return fmt.Sprintf("%v: ", msgAndArgs[0])
	}
	return fmt.Sprintf(msgAndArgs[0].(string)+": ", msgAndArgs[1:]...)
}

// AssertSliceEqual checks that two string slices hold the same
// elements, ignoring order.
func AssertSliceEqual(t *testing.T, expected, actual []string, msgAndArgs ...interface{}) {
	t.Helper()

	if len(expected) != len(actual) {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sSlice length mismatch. Expected: %d, Actual: %d\nExpected: %v\nActual: %v",
			msg, len(expected), len(actual), expected, actual)
		return
	}

	// Sort both slices for comparison
	expectedSorted := slices.Clone(expected)
	actualSorted := slices.Clone(actual)
	slices.Sort(expectedSorted)
	slices.Sort(actualSorted)

	if !slices.Equal(expectedSorted, actualSorted) {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sSlices differ.\nExpected: %v\nActual: %v", msg, expected, actual)
	}
}
