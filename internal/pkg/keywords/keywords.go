// Package keywords extracts study-relevant phrases from review text.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// Vocabulary of study attributes matched against review text. A hyphenated
// phrase matches both its hyphenated and spaced spellings and is reported in
// the spaced form.
var vocabulary = []string{
	"free wifi", "free wi-fi", "quiet", "co-working space", "outlets",
	"comfortable", "spacious", "cozy", "study", "work", "reading",
	"seating", "friendly staff", "bright", "natural light",
}

// MaxMentions caps how many phrases Extract returns per venue.
const MaxMentions = 3

type pattern struct {
	canonical string
	re        *regexp.Regexp
}

var patterns = compile(vocabulary)

func compile(vocab []string) []pattern {
	out := make([]pattern, 0, len(vocab))
	for _, phrase := range vocab {
		expr := `\b` + strings.ReplaceAll(regexp.QuoteMeta(phrase), `-`, `[-\s]?`) + `\b`
		out = append(out, pattern{
			canonical: strings.ReplaceAll(phrase, "-", " "),
			re:        regexp.MustCompile(expr),
		})
	}
	return out
}

// Extract counts whole-word vocabulary occurrences across all review texts
// and returns up to MaxMentions phrases ranked by total count, descending.
// Ties keep discovery order, so the ranking is deterministic. The result is
// never nil and contains no duplicates.
func Extract(reviews []string) []string {
	counts := make(map[string]int)
	order := []string{}

	for _, text := range reviews {
		lower := strings.ToLower(text)
		for _, p := range patterns {
			n := len(p.re.FindAllStringIndex(lower, -1))
			if n == 0 {
				continue
			}
			if _, seen := counts[p.canonical]; !seen {
				order = append(order, p.canonical)
			}
			counts[p.canonical] += n
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > MaxMentions {
		order = order[:MaxMentions]
	}
	return order
}
