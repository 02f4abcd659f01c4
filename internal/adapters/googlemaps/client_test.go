package googlemaps_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/studyspotter/api/internal/adapters/googlemaps"
	"github.com/studyspotter/api/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *googlemaps.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return googlemaps.New("test-key", srv.URL, 5*time.Second)
}

func TestGeocode_ParsesResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/geocode/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Error("api key not sent")
		}
		if r.URL.Query().Get("address") != "ithaca ny" {
			t.Errorf("unexpected address param %q", r.URL.Query().Get("address"))
		}
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "Ithaca, NY 14850, USA",
				"address_components": [
					{"long_name": "Ithaca", "short_name": "Ithaca", "types": ["locality", "political"]},
					{"long_name": "New York", "short_name": "NY", "types": ["administrative_area_level_1"]}
				],
				"geometry": {"location": {"lat": 42.4440, "lng": -76.5019}}
			}]
		}`))
	})

	results, err := client.Geocode(context.Background(), "ithaca ny")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Location.Lat != 42.4440 || r.Location.Lon != -76.5019 {
		t.Errorf("lng not mapped to lon: %+v", r.Location)
	}
	if len(r.AddressComponents) != 2 || r.AddressComponents[1].ShortName != "NY" {
		t.Errorf("address components not mapped: %+v", r.AddressComponents)
	}
}

func TestGeocode_ZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	results, err := client.Geocode(context.Background(), "xqzzyblorp")
	if err != nil {
		t.Fatalf("ZERO_RESULTS must not be an error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}

func TestGeocode_RequestDenied(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "invalid key"}`))
	})

	_, err := client.Geocode(context.Background(), "ithaca")
	if err == nil || !strings.Contains(err.Error(), "REQUEST_DENIED") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestTextSearch_ParsesPlaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/place/textsearch/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"place_id": "p1",
					"name": "Tompkins Library",
					"formatted_address": "101 E Green St",
					"geometry": {"location": {"lat": 42.4393, "lng": -76.4966}},
					"types": ["library"],
					"rating": 4.6
				},
				{"place_id": "p2", "name": "No Geometry Venue"}
			]
		}`))
	})

	places, err := client.TextSearch(context.Background(), `ithaca "public library"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("expected 2 places, got %d", len(places))
	}
	p := places[0]
	if p.PlaceID != "p1" || p.Location == nil || p.Location.Lon != -76.4966 {
		t.Errorf("place not mapped: %+v", p)
	}
	if p.Rating == nil || *p.Rating != 4.6 {
		t.Errorf("rating not mapped: %+v", p.Rating)
	}
	if places[1].Location != nil {
		t.Error("missing geometry must map to nil location")
	}
}

func TestDetails_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "NOT_FOUND"}`))
	})

	_, err := client.Details(context.Background(), "ghost", nil)
	if !errors.Is(err, ports.ErrPlaceNotFound) {
		t.Fatalf("expected ErrPlaceNotFound, got %v", err)
	}
}

func TestDetails_ParsesReviewsAndPhotos(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/place/details/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fields := r.URL.Query().Get("fields")
		if !strings.Contains(fields, "reviews") || !strings.Contains(fields, "photos") {
			t.Errorf("fields not forwarded: %q", fields)
		}
		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"place_id": "p1",
				"name": "Tompkins Library",
				"vicinity": "Downtown Ithaca",
				"rating": 4.6,
				"types": ["library"],
				"reviews": [{"text": "Very quiet"}, {"text": "Free wifi"}],
				"photos": [{"photo_reference": "ref1"}, {"photo_reference": "ref2"}]
			}
		}`))
	})

	detail, err := client.Details(context.Background(), "p1", []string{"reviews", "photos", "name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Name != "Tompkins Library" || detail.Vicinity != "Downtown Ithaca" {
		t.Errorf("detail not mapped: %+v", detail.Place)
	}
	if len(detail.Reviews) != 2 || detail.Reviews[0].Text != "Very quiet" {
		t.Errorf("reviews not mapped: %+v", detail.Reviews)
	}
	if len(detail.Photos) != 2 || detail.Photos[1].Reference != "ref2" {
		t.Errorf("photos not mapped: %+v", detail.Photos)
	}
}

func TestDetails_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Details(context.Background(), "p1", nil)
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected HTTP status error, got %v", err)
	}
}

func TestPhotoURL(t *testing.T) {
	client := googlemaps.New("test-key", "https://maps.example.com", time.Second)

	u := client.PhotoURL("ref123", 800, 600)
	for _, want := range []string{
		"https://maps.example.com/maps/api/place/photo?",
		"photo_reference=ref123",
		"maxwidth=800",
		"maxheight=600",
		"key=test-key",
	} {
		if !strings.Contains(u, want) {
			t.Errorf("photo url missing %q: %s", want, u)
		}
	}
}

func TestGeocode_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "results": []}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Geocode(ctx, "ithaca"); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
