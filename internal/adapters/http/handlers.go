package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/studyspotter/api/internal/core/domain"
	"github.com/studyspotter/api/internal/core/ports"
)

const (
	defaultPageSize = 6
	maxPageSize     = 50
	maxQueryLen     = 200
)

// SearchResponse is the envelope for /v1/spots/search: the resolved display
// location, the aggregation outcome, and one page of the filtered collection.
type SearchResponse struct {
	Query      string              `json:"query"`
	Location   string              `json:"location"`
	Status     domain.SearchStatus `json:"status"`
	Data       []domain.StudySpot  `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

// SearchSpotsHandler runs the full aggregation pipeline for a location query,
// applies rating/category filters, and returns one page of results.
func SearchSpotsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			return errBadRequest(c, "q query parameter is required")
		}
		if len(query) > maxQueryLen {
			return errBadRequest(c, "query too long (max 200 characters)")
		}

		filters, err := parseFilters(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", defaultPageSize)
		if offset < 0 {
			offset = 0
		}
		if limit <= 0 || limit > maxPageSize {
			limit = defaultPageSize
		}

		result, err := deps.Search.Search(c.UserContext(), query)
		if err != nil {
			return errInternal(c, err.Error())
		}

		filtered := domain.FilterSpots(result.Spots, filters)
		page, pg := paginate(filtered, offset, limit)
		if page == nil {
			page = []domain.StudySpot{}
		}

		SetLinkHeaders(c, pg)
		return c.JSON(SearchResponse{
			Query:      result.Query,
			Location:   result.Location,
			Status:     result.Status,
			Data:       page,
			Pagination: pg,
		})
	}
}

// GetSpotHandler returns a single enriched venue by place ID.
func GetSpotHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return errBadRequest(c, "spot id is required")
		}

		spot, err := deps.Spots.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, ports.ErrPlaceNotFound) {
				return errNotFound(c, "spot not found")
			}
			return errUpstream(c, err.Error())
		}
		return c.JSON(spot)
	}
}

// CategoriesHandler returns the fixed category vocabulary.
func CategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(domain.Categories())
	}
}

// parseFilters reads min_rating and categories query parameters into
// SpotFilters, validating categories against the known vocabulary.
func parseFilters(c *fiber.Ctx) (domain.SpotFilters, error) {
	var filters domain.SpotFilters

	if raw := c.Query("min_rating"); raw != "" {
		v := c.QueryFloat("min_rating", -1)
		if v < 0 || v > 5 {
			return filters, errors.New("min_rating must be between 0 and 5")
		}
		filters.MinRating = &v
	}

	if raw := c.Query("categories"); raw != "" {
		known := domain.Categories()
		for _, cat := range strings.Split(raw, ",") {
			cat = strings.TrimSpace(cat)
			if cat == "" {
				continue
			}
			if !containsCategory(known, cat) {
				return filters, errors.New("unknown category: " + cat)
			}
			filters.Categories = append(filters.Categories, cat)
		}
	}

	return filters, nil
}

func containsCategory(known []string, cat string) bool {
	for _, k := range known {
		if k == cat {
			return true
		}
	}
	return false
}
