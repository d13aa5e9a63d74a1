// README: Travel planner; merges provider routes with the dynamic toll estimate.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tollcents/internal/maps"
	"tollcents/internal/modules/toll"
)

// RouteSource provides the tolled route and its toll-free alternative.
// Satisfied by *maps.RouteService.
type RouteSource interface {
	TollRoute(ctx context.Context, origin, destination string) (*maps.Route, error)
	TollFreeRoute(ctx context.Context, origin, destination string) (*maps.Route, error)
}

// TollEstimator prices the express-lane portions of a route.
// Satisfied by *toll.Service.
type TollEstimator interface {
	Estimate(ctx context.Context, steps []toll.RouteStep, hasTollTag bool) (toll.Estimate, error)
}

// DriveTime is a display-friendly duration.
type DriveTime struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// RouteInformation summarizes one route option.
type RouteInformation struct {
	DistanceInMiles float64   `json:"distanceInMiles"`
	DriveTime       DriveTime `json:"driveTime"`
	Description     string    `json:"description"`
}

// TollRouteInformation extends RouteInformation with toll pricing. The
// guaranteed price is whatever flat toll estimate the provider returned
// (zero when it returned none); the dynamic estimate covers the
// congestion-priced express lanes the provider cannot price.
type TollRouteInformation struct {
	RouteInformation
	GuaranteedTollPrice       float64 `json:"guaranteedTollPrice"`
	EstimatedDynamicTollPrice float64 `json:"estimatedDynamicTollPrice"`
	HasDynamicTolls           bool    `json:"hasDynamicTolls"`
	ProcessedAllDynamicTolls  bool    `json:"processedAllDynamicTolls"`
}

// TravelInformation pairs the toll-free route with the tolled option.
// TollRouteInformation is nil when the trip involves no tolls at all.
type TravelInformation struct {
	AvoidTollsRouteInformation RouteInformation      `json:"avoidTollsRouteInformation"`
	TollRouteInformation       *TollRouteInformation `json:"tollRouteInformation"`
}

// TravelPlanner orchestrates the directions provider and the toll engine.
type TravelPlanner struct {
	routes RouteSource
	toll   TollEstimator
	log    *zap.Logger
}

func NewTravelPlanner(routes RouteSource, estimator TollEstimator, log *zap.Logger) *TravelPlanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &TravelPlanner{routes: routes, toll: estimator, log: log}
}

// TravelInformation resolves the trip's route options. When the tolled
// route has any toll exposure the toll-free alternative is fetched so the
// caller can present both; otherwise the single route doubles as the
// toll-free option.
func (p *TravelPlanner) TravelInformation(ctx context.Context, startAddress, endAddress string, hasTollTag bool) (*TravelInformation, error) {
	tollRoute, err := p.routes.TollRoute(ctx, startAddress, endAddress)
	if err != nil {
		return nil, fmt.Errorf("fetching toll route: %w", err)
	}

	estimate, err := p.toll.Estimate(ctx, tollRoute.Steps, hasTollTag)
	if err != nil {
		return nil, fmt.Errorf("estimating dynamic tolls: %w", err)
	}

	tollInfo := &TollRouteInformation{
		RouteInformation:          toRouteInformation(tollRoute.Summary),
		EstimatedDynamicTollPrice: estimate.TotalTollPrice,
		HasDynamicTolls:           estimate.HasDynamicTollSteps,
		ProcessedAllDynamicTolls:  estimate.AllSegmentsMatched,
	}

	if tollInfo.GuaranteedTollPrice <= 0 && !tollInfo.HasDynamicTolls {
		// The route never touches a toll road; it is its own toll-free
		// alternative.
		return &TravelInformation{AvoidTollsRouteInformation: tollInfo.RouteInformation}, nil
	}

	p.log.Info("route has toll exposure, fetching toll-free alternative",
		zap.Float64("dynamic_toll_price", estimate.TotalTollPrice),
		zap.Bool("all_segments_matched", estimate.AllSegmentsMatched))

	avoidRoute, err := p.routes.TollFreeRoute(ctx, startAddress, endAddress)
	if err != nil {
		return nil, fmt.Errorf("fetching toll-free route: %w", err)
	}

	return &TravelInformation{
		AvoidTollsRouteInformation: toRouteInformation(avoidRoute.Summary),
		TollRouteInformation:       tollInfo,
	}, nil
}

func toRouteInformation(summary maps.RouteSummary) RouteInformation {
	return RouteInformation{
		DistanceInMiles: summary.DistanceMiles,
		DriveTime: DriveTime{
			Hours:   int(summary.Duration / time.Hour),
			Minutes: int(summary.Duration % time.Hour / time.Minute),
		},
		Description: summary.Description,
	}
}
