package metrics

import (
	"hash/fnv"
	"strings"
)

// windowSize is the fixed number of consecutive non-blank lines hashed per
// duplication window.
const windowSize = 3

// DuplicationRatio hashes every run of windowSize trimmed non-blank lines and
// returns the share of windows whose hash occurs more than once in the file.
// Overlapping windows all count, so a run of k identical lines contributes
// k-2 duplicate windows. FNV is deliberate: fast, non-cryptographic, with
// hash collisions accepted as an approximation.
func DuplicationRatio(text string) float64 {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	if len(lines) < 2*windowSize {
		return 0
	}

	total := len(lines) - windowSize + 1
	hashes := make([]uint64, total)
	seen := make(map[uint64]int, total)
	for i := 0; i < total; i++ {
		h := fnv.New64a()
		for j := i; j < i+windowSize; j++ {
			h.Write([]byte(lines[j]))
			h.Write([]byte{'\n'})
		}
		hashes[i] = h.Sum64()
		seen[hashes[i]]++
	}

	duplicated := 0
	for _, h := range hashes {
		if seen[h] > 1 {
			duplicated++
		}
	}
	return float64(duplicated) / float64(total)
}
