package domain_test

import (
	"testing"

	"github.com/studyspotter/api/internal/core/domain"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		spotName string
		tags     []string
		want     string
	}{
		{"library name", "Ithaca Public Library", nil, domain.CategoryLibrary},
		{"library name beats cafe tag", "Central Library Café", []string{"cafe"}, domain.CategoryLibrary},
		{"student in name", "Student Success Hub", nil, domain.CategoryLounge},
		{"university in name", "University Commons", nil, domain.CategoryLounge},
		{"cafe in name", "Corner Cafe", nil, domain.CategoryCafe},
		{"coffee in name", "Gimme! Coffee", nil, domain.CategoryCafe},
		{"library tag", "The Stacks", []string{"library", "point_of_interest"}, domain.CategoryLibrary},
		{"cafe tag", "The Grind", []string{"cafe"}, domain.CategoryCafe},
		{"coffee_shop tag", "The Grind", []string{"coffee_shop"}, domain.CategoryCafe},
		{"university tag", "Willard Straight Hall", []string{"university"}, domain.CategoryLounge},
		{"student_center tag", "Memorial Union", []string{"student_center"}, domain.CategoryLounge},
		{"community_center tag", "Southside Center", []string{"community_center"}, domain.CategoryCommunity},
		{"park tag", "Stewart Commons", []string{"park"}, domain.CategoryOutdoor},
		{"library tag beats cafe tag", "The Annex", []string{"cafe", "library"}, domain.CategoryLibrary},
		{"no signal", "Joe's Place", []string{"point_of_interest"}, domain.CategoryDefault},
		{"empty", "", nil, domain.CategoryDefault},
		{"name match is case-insensitive", "GREENE COUNTY LIBRARY", nil, domain.CategoryLibrary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.Categorize(tt.spotName, tt.tags); got != tt.want {
				t.Errorf("Categorize(%q, %v) = %q, want %q", tt.spotName, tt.tags, got, tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	cats := domain.Categories()
	if len(cats) != 6 {
		t.Fatalf("expected 6 categories, got %d: %v", len(cats), cats)
	}

	seen := make(map[string]bool)
	for _, c := range cats {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
	}
	if !seen[domain.CategoryDefault] {
		t.Errorf("default category missing from %v", cats)
	}
}
