// README: The toll pricing engine; classifies, matches, and prices route steps.
package toll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// referenceTimeZone is the zone the express-lane price tables are
// published in.
const referenceTimeZone = "America/Chicago"

// Config carries the matching and pricing knobs for the engine.
type Config struct {
	// ToleranceMiles is the maximum distance at which a step coordinate
	// is considered "at" a segment access point. Required.
	ToleranceMiles float64
	// NoTagMultiplier scales the total when the traveler has no toll
	// transponder. Defaults to 1.
	NoTagMultiplier float64
}

// Service estimates the dynamic, time-of-day toll cost of a route.
type Service struct {
	catalog         *CatalogCache
	toleranceMiles  float64
	noTagMultiplier float64
	loc             *time.Location
	now             func() time.Time
	log             *zap.Logger
}

func NewService(catalog *CatalogCache, cfg Config, log *zap.Logger) (*Service, error) {
	if catalog == nil {
		return nil, errors.New("toll: segment catalog is required")
	}
	if cfg.ToleranceMiles <= 0 {
		return nil, errors.New("toll: access point match tolerance is required")
	}
	multiplier := cfg.NoTagMultiplier
	if multiplier == 0 {
		multiplier = 1
	}
	loc, err := time.LoadLocation(referenceTimeZone)
	if err != nil {
		return nil, fmt.Errorf("toll: loading %s location: %w", referenceTimeZone, err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		catalog:         catalog,
		toleranceMiles:  cfg.ToleranceMiles,
		noTagMultiplier: multiplier,
		loc:             loc,
		now:             time.Now,
		log:             log,
	}, nil
}

// Estimate prices the express-lane portions of an ordered route step list.
// Matching and pricing misses never fail the call; they clear
// AllSegmentsMatched so the caller can present the total as a partial
// estimate. The only error source is the catalog load.
func (s *Service) Estimate(ctx context.Context, steps []RouteStep, hasTollTag bool) (Estimate, error) {
	classified := classifySteps(steps)
	if len(classified) == 0 {
		return Estimate{TotalTollPrice: 0, HasDynamicTollSteps: false, AllSegmentsMatched: true}, nil
	}

	segments, err := s.catalog.Segments(ctx)
	if err != nil {
		return Estimate{}, fmt.Errorf("toll: loading segment catalog: %w", err)
	}
	if len(segments) == 0 {
		// Steps exist but cannot be priced against an empty catalog.
		return Estimate{TotalTollPrice: 0, HasDynamicTollSteps: true, AllSegmentsMatched: false}, nil
	}

	s.log.Info("pricing express-lane steps", zap.Int("classified_steps", len(classified)))

	matchedAll := true
	var total float64
	for pos, current := range classified {
		if isMergeRampStep(classified, pos) {
			s.log.Info("skipping merge ramp step",
				zap.Int("step_index", current.index),
				zap.String("instructions", current.step.Instructions))
			continue
		}

		keys := s.lookupKeys(steps, current.index)

		startSegment := s.matchEntrySegment(segments, current.step.StartLocation)
		if startSegment == nil {
			s.log.Warn("no entry segment within tolerance",
				zap.Int("step_index", current.index),
				zap.Float64("latitude", current.step.StartLocation.Latitude),
				zap.Float64("longitude", current.step.StartLocation.Longitude))
			matchedAll = false
		} else {
			s.log.Info("matched entry segment", zap.String("segment", startSegment.Description))
			if price := segmentPrice(startSegment, keys); price > 0 {
				total += price
			} else {
				matchedAll = false
			}
		}

		if s.endsInSameSegment(startSegment, current.step.EndLocation) {
			// Entering and leaving through the same segment is one
			// traversal; charging the exit too would double count.
			continue
		}

		endSegment := s.matchExitSegment(segments, current.step.EndLocation)
		if endSegment == nil {
			s.log.Warn("no exit segment within tolerance",
				zap.Int("step_index", current.index),
				zap.Float64("latitude", current.step.EndLocation.Latitude),
				zap.Float64("longitude", current.step.EndLocation.Longitude))
			matchedAll = false
			continue
		}
		s.log.Info("matched exit segment", zap.String("segment", endSegment.Description))
		if price := segmentPrice(endSegment, keys); price > 0 {
			total += price
		} else {
			matchedAll = false
		}
	}

	if !hasTollTag {
		total *= s.noTagMultiplier
	}

	result := Estimate{
		TotalTollPrice:      total,
		HasDynamicTollSteps: true,
		AllSegmentsMatched:  matchedAll,
	}
	s.log.Info("completed toll price calculation",
		zap.Float64("total_price", result.TotalTollPrice),
		zap.Bool("all_segments_matched", result.AllSegmentsMatched))
	return result, nil
}

// segmentPrice looks the segment's price table up with each key in priority
// order and returns the first positive price, or 0 when no key resolves.
func segmentPrice(segment *TollSegment, keys []lookupKey) float64 {
	for _, key := range keys {
		prices, ok := segment.TimeOfDayPricing[key.day]
		if !ok {
			continue
		}
		for _, p := range prices {
			if p.Time == key.timeLabel && p.Price > 0 {
				return p.Price
			}
		}
	}
	return 0
}
