package service

import "strings"

// lexicallyRelevant reports whether the lower-cased, whitespace-tokenized
// word sets of the two names overlap. This is the intentionally simple
// relevance heuristic shared by reasoning and action planning.
func lexicallyRelevant(a, b string) bool {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(a)) {
		words[w] = struct{}{}
	}
	for _, w := range strings.Fields(strings.ToLower(b)) {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}
