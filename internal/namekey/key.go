package namekey

import (
	"strings"
)

const (
	// Separator joins the category, set and power segments of a key.
	Separator = "."
	// Wildcard stands for "every power in this set" in villain power refs.
	Wildcard = "*"
	// MaxSegments is the deepest key the tables produce (category.set.power).
	MaxSegments = 3
)

// Key is a case-insensitive dotted name used as the only cross-table reference.
// The original spelling is kept for output; comparisons use the folded form.
type Key struct {
	raw  string
	norm string
}

// New builds a key from its string form. Surrounding whitespace is dropped.
func New(name string) Key {
	name = strings.TrimSpace(name)
	return Key{raw: name, norm: strings.ToLower(name)}
}

// Join builds a key from individual segments, skipping empty ones.
func Join(segments ...string) Key {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		parts = append(parts, segment)
	}
	return New(strings.Join(parts, Separator))
}

// String returns the key as originally spelled.
func (k Key) String() string {
	return k.raw
}

// Normalized returns the folded form used for lookups.
func (k Key) Normalized() string {
	return k.norm
}

func (k Key) IsZero() bool {
	return k.norm == ""
}

// Equal compares two keys ignoring case.
func (k Key) Equal(other Key) bool {
	return k.norm == other.norm
}

// EqualString compares the key against a plain name ignoring case.
func (k Key) EqualString(name string) bool {
	return k.norm == strings.ToLower(strings.TrimSpace(name))
}

// Parts splits the key into its dotted segments, preserving spelling.
func (k Key) Parts() []string {
	if k.raw == "" {
		return nil
	}
	return strings.Split(k.raw, Separator)
}

// Prefix returns a key made of the first n segments.
func (k Key) Prefix(n int) Key {
	parts := k.Parts()
	if n >= len(parts) {
		return k
	}
	if n <= 0 {
		return Key{}
	}
	return New(strings.Join(parts[:n], Separator))
}

// Last returns the final segment (the power name of a full power key).
func (k Key) Last() string {
	parts := k.Parts()
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// IsWildcard reports whether the key is the bare wildcard token.
func (k Key) IsWildcard() bool {
	return k.norm == Wildcard
}

// PartialMatch reports whether pattern matches the leading segments of the key.
// Each pattern segment is compared case-insensitively and may use "*" globs, so
// "Pool" matches "Pool.Flight" and "Villain_*.Pet*" matches "Villain_Pets.Pets_Wolf".
func (k Key) PartialMatch(pattern string) bool {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" || k.norm == "" {
		return false
	}
	want := strings.Split(pattern, Separator)
	have := strings.Split(k.norm, Separator)
	if len(want) > len(have) {
		return false
	}
	for i, segment := range want {
		if !matchSegment(segment, have[i]) {
			return false
		}
	}
	return true
}

// MarshalText keeps the original spelling when keys are encoded.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.raw), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	*k = New(string(text))
	return nil
}
