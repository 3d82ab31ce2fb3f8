package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffResult holds the result of comparing two mode-settings documents.
type DiffResult struct {
	Left        string  `json:"left"`
	Right       string  `json:"right"`
	Similarity  float64 `json:"similarity"`
	UnifiedDiff string  `json:"diff,omitempty"`
	Identical   bool    `json:"identical"`
}

// renderModes renders a mode mapping as stable key=value lines for diffing.
func renderModes(modes map[string]string) string {
	keys := make([]string, 0, len(modes))
	for k := range modes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s = %s\n", k, modes[k])
	}
	return sb.String()
}

// CompareModes diffs two mode mappings (e.g. a profile's modes against the
// mode settings observed in a running instance).
func CompareModes(leftName string, left map[string]string, rightName string, right map[string]string) *DiffResult {
	content1 := renderModes(left)
	content2 := renderModes(right)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(content1, content2, true)

	dist := dmp.DiffLevenshtein(diffs)
	maxLen := len(content1)
	if len(content2) > maxLen {
		maxLen = len(content2)
	}
	similarity := 1.0
	if maxLen > 0 {
		similarity = 1.0 - float64(dist)/float64(maxLen)
	}

	patches := dmp.PatchMake(content1, diffs)

	return &DiffResult{
		Left:        leftName,
		Right:       rightName,
		Similarity:  similarity,
		UnifiedDiff: dmp.PatchToText(patches),
		Identical:   content1 == content2,
	}
}
