// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package splice replaces marker-delimited regions inside static text
// files. The markers stay in place so the next run can splice again.
package splice

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReplaceBetween replaces the first span from start through end
// (markers included, span may cross newlines) with
// "start\n<replacement>\nend". The second return value is false when
// the marker pair does not occur, in which case text is returned
// unchanged.
func ReplaceBetween(text, start, end, replacement string) (string, bool) {
	i := strings.Index(text, start)
	if i < 0 {
		return text, false
	}
	rest := text[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return text, false
	}

	var b strings.Builder
	b.WriteString(text[:i])
	b.WriteString(start)
	b.WriteString("\n")
	b.WriteString(replacement)
	b.WriteString("\n")
	b.WriteString(end)
	b.WriteString(rest[j+len(end):])
	return b.String(), true
}

// UpdateFile splices content between the marker pair in the file at
// path and writes the file back. Read and write failures are errors. A
// missing marker pair leaves the file unchanged and prints a warning to
// w instead of failing: the target documents are hand-maintained and an
// absent region means there is simply nothing to update.
func UpdateFile(path, start, end, content string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	updated, found := ReplaceBetween(string(data), start, end, content)
	if !found {
		fmt.Fprintf(w, "warning: marker pair not found in %s, file left unchanged\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(w, "Updated %s\n", path)
	return nil
}
