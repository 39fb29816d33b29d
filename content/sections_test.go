package content

import "testing"

func TestSectionsWellFormed(t *testing.T) {
	specs := Sections()
	if len(specs) == 0 {
		t.Fatal("Expected at least one section")
	}

	seen := make(map[string]bool)
	for i, s := range specs {
		if s.ID == "" {
			t.Errorf("Section %d has empty id", i)
		}
		if seen[s.ID] {
			t.Errorf("Duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Title == "" {
			t.Errorf("Section %q has empty title", s.ID)
		}
		if len(s.Body) == 0 {
			t.Errorf("Section %q has no body copy", s.ID)
		}
	}
}

func TestOrderedIDsMatchPalette(t *testing.T) {
	specs := Sections()
	ids := OrderedIDs(specs)
	palette := Palette(specs)

	if len(ids) != len(specs) {
		t.Fatalf("Expected %d ids, got %d", len(specs), len(ids))
	}
	for _, id := range ids {
		if _, ok := palette[id]; !ok {
			t.Errorf("Palette missing entry for %q", id)
		}
	}
}

func TestLayoutFillsViewport(t *testing.T) {
	specs := Sections()
	heights := Layout(specs, 40)
	for i, h := range heights {
		if h < 40 {
			t.Errorf("Section %q: height %d smaller than viewport", specs[i].ID, h)
		}
		if h < len(specs[i].Body)+SectionPadding {
			t.Errorf("Section %q: height %d cannot fit its body", specs[i].ID, h)
		}
	}
}

func TestLayoutTallBodyExceedsViewport(t *testing.T) {
	s := SectionSpec{ID: "tall", Body: make([]string, 50)}
	if got := Rows(s, 10); got != 50+SectionPadding {
		t.Errorf("Expected body-driven height %d, got %d", 50+SectionPadding, got)
	}
}
