package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/studyspotter/api/internal/core/domain"
)

// buildSchema creates the GraphQL schema wired to our services.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoPoint",
		Fields: graphql.Fields{
			"lat": &graphql.Field{Type: graphql.Float},
			"lon": &graphql.Field{Type: graphql.Float},
		},
	})

	spotType := graphql.NewObject(graphql.ObjectConfig{
		Name: "StudySpot",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.String},
			"name":            &graphql.Field{Type: graphql.String},
			"address":         &graphql.Field{Type: graphql.String},
			"rating":          &graphql.Field{Type: graphql.Float},
			"location":        &graphql.Field{Type: geoPointType},
			"tags":            &graphql.Field{Type: graphql.NewList(graphql.String)},
			"category":        &graphql.Field{Type: graphql.String},
			"review_mentions": &graphql.Field{Type: graphql.NewList(graphql.String)},
			"photo_url":       &graphql.Field{Type: graphql.String},
			"distance":        &graphql.Field{Type: graphql.Float},
		},
	})

	searchResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "SearchResult",
		Fields: graphql.Fields{
			"query":    &graphql.Field{Type: graphql.String},
			"location": &graphql.Field{Type: graphql.String},
			"status":   &graphql.Field{Type: graphql.String},
			"spots":    &graphql.Field{Type: graphql.NewList(spotType)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"searchSpots": &graphql.Field{
				Type:        searchResultType,
				Description: "Search study spots around a location",
				Args: graphql.FieldConfigArgument{
					"query":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"minRating":  &graphql.ArgumentConfig{Type: graphql.Float},
					"categories": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					q := p.Args["query"].(string)

					result, err := deps.Search.Search(p.Context, q)
					if err != nil {
						return nil, err
					}

					var filters domain.SpotFilters
					if mr, ok := p.Args["minRating"].(float64); ok {
						filters.MinRating = &mr
					}
					if cats, ok := p.Args["categories"].([]interface{}); ok {
						for _, cat := range cats {
							if s, ok := cat.(string); ok {
								filters.Categories = append(filters.Categories, s)
							}
						}
					}

					filtered := *result
					filtered.Spots = domain.FilterSpots(result.Spots, filters)
					return filtered, nil
				},
			},
			"spot": &graphql.Field{
				Type:        spotType,
				Description: "Get a single study spot by place ID",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id := p.Args["id"].(string)
					return deps.Spots.Get(p.Context, id)
				},
			},
			"spotCategories": &graphql.Field{
				Type:        graphql.NewList(graphql.String),
				Description: "The fixed category vocabulary",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return domain.Categories(), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.UserContext(),
		})

		return c.JSON(result)
	}
}
