package geospatial_test

import (
	"math"
	"testing"

	"github.com/studyspotter/api/internal/pkg/geospatial"
)

func TestHaversine_SamePoint(t *testing.T) {
	if d := geospatial.Haversine(42.4440, -76.5019, 42.4440, -76.5019); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}
}

func TestHaversine_OneDegreeAtEquator(t *testing.T) {
	// One degree of longitude at the equator is about 111.19 km.
	d := geospatial.Haversine(0, 0, 0, 1)
	if math.Abs(d-111195) > 100 {
		t.Errorf("expected ~111195m, got %v", d)
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	a := geospatial.Haversine(42.4440, -76.5019, 40.7128, -74.0060)
	b := geospatial.Haversine(40.7128, -74.0060, 42.4440, -76.5019)
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
	if a < 200_000 || a > 300_000 {
		t.Errorf("Ithaca to NYC should be roughly 250km, got %vm", a)
	}
}
