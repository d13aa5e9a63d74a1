// README: Google Maps directions gateway; fetches tolled and toll-free routes.
package maps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"tollcents/internal/geo"
	"tollcents/internal/modules/toll"
)

const metersPerMile = 1609.344

// ErrNoRoute is returned when the provider finds no route between the
// requested addresses.
var ErrNoRoute = errors.New("no route found")

// RouteSummary is the provider's whole-route summary.
type RouteSummary struct {
	Description   string
	DistanceMiles float64
	Duration      time.Duration
}

// Route is a provider route reduced to what the toll engine and the API
// surface consume.
type Route struct {
	Summary RouteSummary
	Steps   []toll.RouteStep
}

// RouteService handles interactions with the Google Maps Directions API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// TollRoute returns the default driving route from origin to destination,
// keeping every navigation step for toll-segment resolution.
func (s *RouteService) TollRoute(ctx context.Context, origin, destination string) (*Route, error) {
	return s.route(ctx, origin, destination, nil)
}

// TollFreeRoute returns the avoid-tolls alternative for the same trip.
func (s *RouteService) TollFreeRoute(ctx context.Context, origin, destination string) (*Route, error) {
	return s.route(ctx, origin, destination, []maps.Avoid{maps.AvoidTolls})
}

func (s *RouteService) route(ctx context.Context, origin, destination string, avoid []maps.Avoid) (*Route, error) {
	r := &maps.DirectionsRequest{
		Origin:        origin,
		Destination:   destination,
		Mode:          maps.TravelModeDriving,
		DepartureTime: "now",
		Language:      "en",
		Region:        "us",
		Avoid:         avoid,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, ErrNoRoute
	}

	return convertRoute(&routes[0]), nil
}

func convertRoute(route *maps.Route) *Route {
	var distanceMeters int
	var duration time.Duration
	var steps []toll.RouteStep
	for _, leg := range route.Legs {
		distanceMeters += leg.Distance.Meters
		duration += leg.Duration
		for _, step := range leg.Steps {
			steps = append(steps, convertStep(step))
		}
	}

	return &Route{
		Summary: RouteSummary{
			Description:   route.Summary,
			DistanceMiles: float64(distanceMeters) / metersPerMile,
			Duration:      duration,
		},
		Steps: steps,
	}
}

func convertStep(step *maps.Step) toll.RouteStep {
	return toll.RouteStep{
		DistanceMeters:  float64(step.Distance.Meters),
		StaticDuration:  step.Duration,
		EncodedPolyline: step.Polyline.Points,
		StartLocation:   geo.Coordinate{Latitude: step.StartLocation.Lat, Longitude: step.StartLocation.Lng},
		EndLocation:     geo.Coordinate{Latitude: step.EndLocation.Lat, Longitude: step.EndLocation.Lng},
		Maneuver:        toll.ParseManeuver(step.Maneuver),
		Instructions:    flattenInstructions(step.HTMLInstructions),
	}
}
