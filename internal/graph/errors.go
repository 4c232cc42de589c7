package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/morozRed/powerdex/internal/keyed"
	"github.com/morozRed/powerdex/internal/powers"
)

// ErrNoTopLevelCategories means the configured allow-list matched nothing, so
// the run would produce no output.
var ErrNoTopLevelCategories = errors.New("no power categories to work on")

const suggestionThreshold = 0.85

func noTopLevelError(allow []string, categories *keyed.Keyed[powers.PowerCategory]) error {
	suggestions := suggestCategories(allow, categories)
	if len(suggestions) == 0 {
		return fmt.Errorf("%w: %s matched no category; did you filter them all?",
			ErrNoTopLevelCategories, strings.Join(allow, ", "))
	}
	return fmt.Errorf("%w: %s matched no category (did you mean %s?)",
		ErrNoTopLevelCategories, strings.Join(allow, ", "), strings.Join(suggestions, ", "))
}

// suggestCategories returns, for each requested name, the closest category
// name by Jaro-Winkler similarity when it is close enough to be a typo.
func suggestCategories(requested []string, categories *keyed.Keyed[powers.PowerCategory]) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(requested))
	for _, name := range requested {
		best := ""
		bestScore := 0.0
		for pcat := range categories.Values() {
			candidate := pcat.Name.String()
			score := matchr.JaroWinkler(strings.ToLower(name), pcat.Name.Normalized(), false)
			if score > bestScore {
				best, bestScore = candidate, score
			}
		}
		if best == "" || bestScore < suggestionThreshold || seen[best] {
			continue
		}
		seen[best] = true
		out = append(out, best)
	}
	return out
}
