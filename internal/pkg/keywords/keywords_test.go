package keywords_test

import (
	"reflect"
	"testing"

	"github.com/studyspotter/api/internal/pkg/keywords"
)

func TestExtract_RankedByCount(t *testing.T) {
	reviews := []string{
		"Great quiet spot with plenty of outlets",
		"So quiet and cozy",
	}

	got := keywords.Extract(reviews)
	want := []string{"quiet", "outlets", "cozy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtract_HyphenNormalization(t *testing.T) {
	reviews := []string{
		"Nice co-working space downtown",
		"The co working space has great seating",
	}

	got := keywords.Extract(reviews)
	if len(got) == 0 {
		t.Fatal("expected at least one phrase")
	}
	// Both spellings count as one phrase, reported in the spaced form, and
	// two occurrences beat the single "seating" mention.
	if got[0] != "co working space" {
		t.Errorf("expected 'co working space' first, got %q", got[0])
	}
	for _, kw := range got {
		if kw == "co-working space" {
			t.Error("hyphenated form leaked into the output")
		}
	}
}

func TestExtract_CapsAtThree(t *testing.T) {
	reviews := []string{
		"Quiet, cozy, spacious and comfortable with bright natural light and outlets everywhere",
	}

	got := keywords.Extract(reviews)
	if len(got) != keywords.MaxMentions {
		t.Errorf("expected %d phrases, got %d: %v", keywords.MaxMentions, len(got), got)
	}
}

func TestExtract_NoReviews(t *testing.T) {
	got := keywords.Extract(nil)
	if got == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("expected no phrases, got %v", got)
	}
}

func TestExtract_NoMatches(t *testing.T) {
	got := keywords.Extract([]string{"The parking lot was enormous"})
	if len(got) != 0 {
		t.Errorf("expected no phrases, got %v", got)
	}
}

func TestExtract_WholeWordOnly(t *testing.T) {
	// "networking" must not count as "work", "studying" not as "study".
	got := keywords.Extract([]string{"Good for networking and studying hard"})
	for _, kw := range got {
		if kw == "work" || kw == "study" {
			t.Errorf("partial word matched: %q", kw)
		}
	}
}

func TestExtract_CaseInsensitive(t *testing.T) {
	got := keywords.Extract([]string{"QUIET and Cozy"})
	want := []string{"quiet", "cozy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	reviews := []string{"quiet cozy bright spacious"}
	first := keywords.Extract(reviews)
	for i := 0; i < 10; i++ {
		if got := keywords.Extract(reviews); !reflect.DeepEqual(got, first) {
			t.Fatalf("non-deterministic result: %v vs %v", first, got)
		}
	}
}
