package display

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/asjadenet/cliargs"
)

// Suggest returns the candidate the user most plausibly meant by name, or ""
// when nothing is close enough to be worth proposing.
//
// Case-insensitive prefix matches win outright; otherwise the best fuzzy
// (subsequence) match is used.
func Suggest(name string, candidates []string) string {
	if name == "" || len(candidates) == 0 {
		return ""
	}

	lower := strings.ToLower(name)
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			return c
		}
	}

	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}

// longNames returns every long alias declared in the schema, in flag order.
func longNames(s *cliargs.Schema) []string {
	var names []string

	for _, flag := range s.Flags() {
		if long := s.LongName(flag); long != "" {
			names = append(names, long)
		}
	}

	return names
}
