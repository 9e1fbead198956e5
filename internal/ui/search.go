package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// SearchConfig bundles tuning parameters for the jump-to-line search.
type SearchConfig struct {
	MinCoverage float64 // minimal share of the query that must match
	MaxSpread   int     // maximal distance between first and last match index
	MaxResults  int     // upper limit of returned results
}

// searchLines returns indices of lines matching the query. A plain substring
// pass runs first (buffer order); fuzzy matching with coverage and spread
// pruning only kicks in when it comes up empty (score order).
func searchLines(q string, lines []string, cfg SearchConfig) []int {
	q = strings.TrimSpace(strings.ToLower(q))
	if q == "" {
		return nil
	}

	base := make([]string, len(lines))
	for i, l := range lines {
		base[i] = strings.ToLower(l)
	}

	if sub := searchBySubstring(q, base, cfg); len(sub) > 0 {
		return sub
	}
	return searchByFuzzy(q, base, cfg)
}

func searchBySubstring(q string, base []string, cfg SearchConfig) []int {
	out := make([]int, 0, min(cfg.MaxResults, len(base)))
	for i, l := range base {
		if strings.Contains(l, q) {
			out = append(out, i)
			if len(out) >= cfg.MaxResults {
				break
			}
		}
	}
	return out
}

// searchByFuzzy applies fuzzy matching and filters results based on coverage
// and spread thresholds from cfg.
func searchByFuzzy(q string, base []string, cfg SearchConfig) []int {
	matches := fuzzy.Find(q, base)

	pruned := make([]int, 0, len(matches))
	for _, mt := range matches {
		if matchCoverage(q, mt) < cfg.MinCoverage {
			continue
		}
		if matchSpread(mt) > cfg.MaxSpread {
			continue
		}
		pruned = append(pruned, mt.Index)
		if len(pruned) >= cfg.MaxResults {
			break
		}
	}
	if len(pruned) == 0 {
		for i := 0; i < len(matches) && i < cfg.MaxResults; i++ {
			pruned = append(pruned, matches[i].Index)
		}
	}
	return pruned
}

// matchCoverage returns the ratio of matched characters to the query length.
func matchCoverage(q string, m fuzzy.Match) float64 {
	if len(q) == 0 {
		return 1
	}
	return float64(len(m.MatchedIndexes)) / float64(len(q))
}

// matchSpread returns the distance between the first and last matched index.
func matchSpread(m fuzzy.Match) int {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	return m.MatchedIndexes[len(m.MatchedIndexes)-1] - m.MatchedIndexes[0]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
