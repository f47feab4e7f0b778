package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequestLine renders the result line the app prints for one request.
func RequestLine(lval, rval string, connected bool) string {
	status := "not connected"
	if connected {
		status = "connected"
	}
	return fmt.Sprintf("request: lval: %s rval: %s: %s", lval, rval, status)
}

// AssertRequest checks that the run printed the expected result for lval/rval.
func AssertRequest(t *testing.T, result *HarnessResult, lval, rval string, connected bool) {
	t.Helper()

	expected := RequestLine(lval, rval, connected)
	require.True(t,
		strings.Contains(result.Output, expected+"\n"),
		"expected %q in output:\n%s", expected, result.Output,
	)
}

// RequestLines returns only the request result lines of the output.
func RequestLines(result *HarnessResult) []string {
	var lines []string
	for _, line := range strings.Split(result.Output, "\n") {
		if strings.HasPrefix(line, "request: ") {
			lines = append(lines, line)
		}
	}
	return lines
}
