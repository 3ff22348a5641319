package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// compositeSep joins parent and child identifiers where no natural
// single-column key exists. Filepaths may themselves contain the separator,
// so splitting always consumes separators from the left.
const compositeSep = "-"

// PatchsetCompositeID builds the run-unique key for a patchset,
// e.g. issue 10854242 patchset 1001 -> "10854242-1001".
func PatchsetCompositeID(issue, patchset int64) string {
	return strconv.FormatInt(issue, 10) + compositeSep + strconv.FormatInt(patchset, 10)
}

// PatchsetFileCompositeID builds the run-unique key for a file touched by a
// patchset, e.g. "10854242-1001-chrome/browser/ssl/ssl_browser_tests.cc".
func PatchsetFileCompositeID(compositePatchsetID, filepath string) string {
	return compositePatchsetID + compositeSep + filepath
}

// SplitPatchsetCompositeID deconstructs a patchset composite id back into its
// issue id and patchset number.
func SplitPatchsetCompositeID(id string) (issue, patchset int64, err error) {
	left, right, ok := strings.Cut(id, compositeSep)
	if !ok {
		return 0, 0, fmt.Errorf("malformed patchset composite id %q", id)
	}
	issue, err = strconv.ParseInt(left, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed issue id in %q: %w", id, err)
	}
	patchset, err = strconv.ParseInt(right, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed patchset number in %q: %w", id, err)
	}
	return issue, patchset, nil
}

// SplitPatchsetFileCompositeID deconstructs a patchset-file composite id back
// into its parent patchset composite id and the filepath. Only the first two
// separators are structural; everything after belongs to the filepath.
func SplitPatchsetFileCompositeID(id string) (compositePatchsetID, filepath string, err error) {
	parts := strings.SplitN(id, compositeSep, 3)
	if len(parts) != 3 {
		return "", "", fmt.Errorf("malformed patchset file composite id %q", id)
	}
	return parts[0] + compositeSep + parts[1], parts[2], nil
}
