package namekey

import (
	"regexp"
	"strings"
)

type rule struct {
	pattern string
	negated bool
}

// Filter applies partial-match exclusion rules to keys with "last rule wins"
// behavior. A rule prefixed with "!" re-includes keys an earlier rule excluded.
type Filter struct {
	rules []rule
}

// NewFilter builds a filter from configured patterns. Blank lines and "#"
// comments are skipped.
func NewFilter(patterns []string) *Filter {
	rules := make([]rule, 0, len(patterns))
	for _, line := range patterns {
		if parsed, ok := parseRule(line); ok {
			rules = append(rules, parsed)
		}
	}
	return &Filter{rules: rules}
}

// Len returns the number of usable rules.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.rules)
}

// Excludes reports whether key should be dropped.
func (f *Filter) Excludes(key Key) bool {
	if f == nil {
		return false
	}
	excluded := false
	for _, r := range f.rules {
		if key.PartialMatch(r.pattern) {
			excluded = !r.negated
		}
	}
	return excluded
}

func parseRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	parsed := rule{}
	if strings.HasPrefix(line, "!") {
		parsed.negated = true
		line = strings.TrimSpace(strings.TrimPrefix(line, "!"))
	}
	line = strings.Trim(line, Separator)
	if line == "" {
		return rule{}, false
	}
	parsed.pattern = line
	return parsed, true
}

func matchSegment(pattern, value string) bool {
	if pattern == Wildcard || pattern == value {
		return true
	}
	if !strings.ContainsAny(pattern, "*?") {
		return false
	}
	ok, err := regexp.MatchString("^"+globToRegex(pattern)+"$", value)
	return err == nil && ok
}

func globToRegex(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		switch ch {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			if strings.ContainsRune(`.+()|[]{}^$\\`, rune(ch)) {
				b.WriteByte('\\')
			}
			b.WriteByte(ch)
		}
	}
	return b.String()
}
