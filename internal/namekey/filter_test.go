package namekey

import "testing"

func TestFilter_LastRuleWins(t *testing.T) {
	f := NewFilter([]string{
		"# villain sets are huge",
		"Villain_*",
		"!Villain_Pets.Pets_Wolf",
		"Boosts.Crafted_*",
		"",
	})

	if f.Len() != 3 {
		t.Fatalf("expected 3 rules, got %d", f.Len())
	}

	cases := []struct {
		key      string
		excluded bool
	}{
		{key: "Villain_Melee.Broadsword", excluded: true},
		{key: "Villain_Pets.Pets_Wolf", excluded: false},
		{key: "Villain_Pets.Pets_Bear", excluded: true},
		{key: "Boosts.Crafted_Damage", excluded: true},
		{key: "Boosts.Damage", excluded: false},
		{key: "Pool.Flight", excluded: false},
	}

	for _, tc := range cases {
		if got := f.Excludes(New(tc.key)); got != tc.excluded {
			t.Fatalf("key %s: expected excluded=%v, got %v", tc.key, tc.excluded, got)
		}
	}
}

func TestFilter_NilExcludesNothing(t *testing.T) {
	var f *Filter
	if f.Excludes(New("Pool.Flight")) {
		t.Fatalf("expected nil filter to keep every key")
	}
	if f.Len() != 0 {
		t.Fatalf("expected nil filter to have no rules")
	}
}
