// Package googlemaps implements ports.PlacesClient against the Google
// Geocoding API and Places web service.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/studyspotter/api/internal/core/domain"
	"github.com/studyspotter/api/internal/core/ports"
	"github.com/studyspotter/api/internal/pkg/metrics"
)

const (
	geocodePath    = "/maps/api/geocode/json"
	textSearchPath = "/maps/api/place/textsearch/json"
	detailsPath    = "/maps/api/place/details/json"
	photoPath      = "/maps/api/place/photo"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
)

// Client is a PlacesClient backed by the Google web services. Requests are
// bounded by the HTTP client timeout; the caller's context is honored too.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

var _ ports.PlacesClient = (*Client)(nil)

// New creates a client. baseURL is normally "https://maps.googleapis.com";
// tests point it at a local server.
func New(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// ---- wire types ----

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress  string             `json:"formatted_address"`
		AddressComponents []addressComponent `json:"address_components"`
		Geometry          geometry           `json:"geometry"`
	} `json:"results"`
}

type placeResult struct {
	PlaceID          string    `json:"place_id"`
	Name             string    `json:"name"`
	FormattedAddress string    `json:"formatted_address"`
	Vicinity         string    `json:"vicinity"`
	Geometry         *geometry `json:"geometry"`
	Types            []string  `json:"types"`
	Rating           *float64  `json:"rating"`
}

type searchResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Results      []placeResult `json:"results"`
}

type detailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       *struct {
		placeResult
		Reviews []struct {
			Text string `json:"text"`
		} `json:"reviews"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"result"`
}

// ---- PlacesClient ----

// Geocode resolves a free-text location query, best match first.
func (c *Client) Geocode(ctx context.Context, query string) ([]ports.GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", query)

	var resp geocodeResponse
	if err := c.get(ctx, "geocode", geocodePath, params, &resp); err != nil {
		return nil, err
	}
	if resp.Status == statusZeroResults {
		return nil, nil
	}
	if resp.Status != statusOK {
		return nil, fmt.Errorf("geocode %q: status %s: %s", query, resp.Status, resp.ErrorMessage)
	}

	out := make([]ports.GeocodeResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		components := make([]ports.AddressComponent, 0, len(r.AddressComponents))
		for _, ac := range r.AddressComponents {
			components = append(components, ports.AddressComponent{
				LongName:  ac.LongName,
				ShortName: ac.ShortName,
				Types:     ac.Types,
			})
		}
		out = append(out, ports.GeocodeResult{
			FormattedAddress:  r.FormattedAddress,
			AddressComponents: components,
			Location:          domain.GeoPoint{Lat: r.Geometry.Location.Lat, Lon: r.Geometry.Location.Lng},
		})
	}
	return out, nil
}

// TextSearch runs one free-text venue search.
func (c *Client) TextSearch(ctx context.Context, query string) ([]ports.Place, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp searchResponse
	if err := c.get(ctx, "textsearch", textSearchPath, params, &resp); err != nil {
		return nil, err
	}
	if resp.Status == statusZeroResults {
		return nil, nil
	}
	if resp.Status != statusOK {
		return nil, fmt.Errorf("text search %q: status %s: %s", query, resp.Status, resp.ErrorMessage)
	}

	out := make([]ports.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, toPlace(r))
	}
	return out, nil
}

// Details fetches the detail record for a place, limited to fields.
func (c *Client) Details(ctx context.Context, placeID string, fields []string) (*ports.PlaceDetail, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}

	var resp detailsResponse
	if err := c.get(ctx, "details", detailsPath, params, &resp); err != nil {
		return nil, err
	}
	if resp.Status == statusNotFound || resp.Status == statusZeroResults || resp.Result == nil {
		return nil, fmt.Errorf("details %s: %w", placeID, ports.ErrPlaceNotFound)
	}
	if resp.Status != statusOK {
		return nil, fmt.Errorf("details %s: status %s: %s", placeID, resp.Status, resp.ErrorMessage)
	}

	detail := &ports.PlaceDetail{Place: toPlace(resp.Result.placeResult)}
	for _, r := range resp.Result.Reviews {
		detail.Reviews = append(detail.Reviews, ports.Review{Text: r.Text})
	}
	for _, p := range resp.Result.Photos {
		detail.Photos = append(detail.Photos, ports.Photo{Reference: p.PhotoReference})
	}
	return detail, nil
}

// PhotoURL builds the photo-endpoint URL for a reference, bounded to the
// given maximum dimensions. The endpoint redirects to the image, so the URL
// is directly displayable by clients.
func (c *Client) PhotoURL(photoRef string, maxWidth, maxHeight int) string {
	params := url.Values{}
	params.Set("photo_reference", photoRef)
	params.Set("maxwidth", strconv.Itoa(maxWidth))
	params.Set("maxheight", strconv.Itoa(maxHeight))
	params.Set("key", c.apiKey)
	return c.baseURL + photoPath + "?" + params.Encode()
}

// ---- helpers ----

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	start := time.Now()
	status := "error"
	defer func() {
		metrics.PlacesRequests.WithLabelValues(endpoint, status).Inc()
		metrics.PlacesRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		status = strconv.Itoa(resp.StatusCode)
		return fmt.Errorf("%s request: unexpected HTTP %d", endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	status = "ok"
	return nil
}

func toPlace(r placeResult) ports.Place {
	p := ports.Place{
		PlaceID:          r.PlaceID,
		Name:             r.Name,
		FormattedAddress: r.FormattedAddress,
		Vicinity:         r.Vicinity,
		Types:            r.Types,
		Rating:           r.Rating,
	}
	if r.Geometry != nil {
		p.Location = &domain.GeoPoint{Lat: r.Geometry.Location.Lat, Lon: r.Geometry.Location.Lng}
	}
	return p
}
