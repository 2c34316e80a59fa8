package provision

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hostprep/hostprep/internal/tasks"
)

// ParseSelection parses the operator's task choice against n displayed
// items. Accepted forms: "a"/"all" for everything, comma-separated 1-based
// indices, and inclusive ranges ("1,3-5"). The result is de-duplicated
// preserving first occurrence. Malformed or out-of-range input is rejected
// with a ValidationError and never coerced.
func ParseSelection(input string, n int) ([]int, error) {
	cleaned := strings.TrimSpace(input)
	if cleaned == "" {
		return nil, &ValidationError{Input: input, Reason: "selection is empty"}
	}

	if strings.EqualFold(cleaned, "a") || strings.EqualFold(cleaned, "all") {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i + 1
		}
		return indices, nil
	}

	// Tolerate full-width commas from CJK input methods.
	cleaned = strings.ReplaceAll(cleaned, "，", ",")

	var indices []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(cleaned, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, &ValidationError{Input: input, Reason: "empty list element"}
		}

		lo, hi, err := parsePart(part)
		if err != nil {
			return nil, &ValidationError{Input: input, Reason: err.Error()}
		}
		if lo < 1 || hi > n {
			return nil, &ValidationError{Input: input, Reason: "index out of range 1.." + strconv.Itoa(n)}
		}
		for i := lo; i <= hi; i++ {
			if !seen[i] {
				seen[i] = true
				indices = append(indices, i)
			}
		}
	}
	return indices, nil
}

// parsePart parses one list element: a single index or an inclusive range.
func parsePart(part string) (int, int, error) {
	if lo, hi, found := strings.Cut(part, "-"); found {
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return 0, 0, fmt.Errorf("not a number: %s", lo)
		}
		end, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return 0, 0, fmt.Errorf("not a number: %s", hi)
		}
		if end < start {
			return 0, 0, fmt.Errorf("descending range %s", part)
		}
		return start, end, nil
	}

	idx, err := strconv.Atoi(part)
	if err != nil {
		return 0, 0, fmt.Errorf("not a number: %s", part)
	}
	return idx, idx, nil
}

// KeysFor maps 1-based display indices onto the sorted catalog's keys.
func KeysFor(defs []tasks.Definition, indices []int) []string {
	keys := make([]string, 0, len(indices))
	for _, idx := range indices {
		keys = append(keys, defs[idx-1].Key)
	}
	return keys
}
