package catalog

import (
	"sort"
	"testing"
	"unicode/utf8"
)

func TestCatalogShape(t *testing.T) {
	prompts := Prompts()
	if len(prompts) != Len() {
		t.Fatalf("Prompts returned %d categories, want %d", len(prompts), Len())
	}
	if Len() != 57 {
		t.Fatalf("catalog has %d categories, want 57", Len())
	}
	for name, list := range prompts {
		if name == "" || !utf8.ValidString(name) {
			t.Fatalf("invalid category name %q", name)
		}
		if len(list) < 2 {
			t.Fatalf("category %q has %d prompts, want at least 2", name, len(list))
		}
		for _, prompt := range list {
			if prompt == "" {
				t.Fatalf("category %q has an empty prompt", name)
			}
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("Names not sorted: %v", names)
	}
	seen := map[string]bool{}
	for _, name := range names {
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
	}
}

func TestKnownCategoriesPresent(t *testing.T) {
	prompts := Prompts()
	for _, name := range []string{"abstract", "nature", "space", "anime", "cyberpunk", "vintage"} {
		if _, ok := prompts[name]; !ok {
			t.Fatalf("category %q missing from catalog", name)
		}
	}
}

func TestPromptsReturnsCopy(t *testing.T) {
	first := Prompts()
	first["nature"][0] = "mutated"
	delete(first, "forest")
	second := Prompts()
	if second["nature"][0] == "mutated" {
		t.Fatalf("Prompts exposed internal prompt slice")
	}
	if _, ok := second["forest"]; !ok {
		t.Fatalf("Prompts exposed internal map")
	}
}
