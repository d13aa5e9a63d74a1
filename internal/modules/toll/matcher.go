// README: Proximity matching of step coordinates to segment access points.
package toll

import "tollcents/internal/geo"

// matchEntrySegment returns the first catalog segment with an entry access
// point within tolerance of the coordinate, or nil. Ties between segments
// are not disambiguated; the tolerance is expected to be smaller than the
// spacing between segments.
func (s *Service) matchEntrySegment(segments []TollSegment, c geo.Coordinate) *TollSegment {
	for i := range segments {
		if s.anyPointWithinTolerance(segments[i].EntryPoints, c) {
			return &segments[i]
		}
	}
	return nil
}

// matchExitSegment is the exit-point counterpart of matchEntrySegment.
func (s *Service) matchExitSegment(segments []TollSegment, c geo.Coordinate) *TollSegment {
	for i := range segments {
		if s.anyPointWithinTolerance(segments[i].ExitPoints, c) {
			return &segments[i]
		}
	}
	return nil
}

// endsInSameSegment reports whether the step's end coordinate falls on an
// exit point of the segment its start matched, meaning the whole step is a
// single traversal and must not be charged twice.
func (s *Service) endsInSameSegment(segment *TollSegment, end geo.Coordinate) bool {
	if segment == nil {
		return false
	}
	return s.anyPointWithinTolerance(segment.ExitPoints, end)
}

func (s *Service) anyPointWithinTolerance(points []AccessPoint, c geo.Coordinate) bool {
	for _, p := range points {
		if geo.DistanceMiles(p.Location, c) <= s.toleranceMiles {
			return true
		}
	}
	return false
}
