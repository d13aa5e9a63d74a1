// README: Time-of-day bucket resolution for the segment price tables.
package toll

import "time"

// lookupKey addresses one row of a segment price table.
type lookupKey struct {
	day       string // e.g. "Monday"
	timeLabel string // e.g. "07:00 AM"
}

// timeLabelLayout matches the scraper's 12-hour table labels.
const timeLabelLayout = "03:04 PM"

// arrivalOffset estimates the drive time to reach the step at stepIndex by
// summing the static durations of all strictly preceding steps.
func arrivalOffset(steps []RouteStep, stepIndex int) time.Duration {
	var offset time.Duration
	for i := 0; i < stepIndex && i < len(steps); i++ {
		offset += steps[i].StaticDuration
	}
	return offset
}

// lookupKeys converts the estimated arrival time at the step into two
// price-table keys, in priority order. The price tables are published in
// 30-minute buckets that do not always line up with the rounded estimate,
// so the top of the hour is tried as a fallback.
func (s *Service) lookupKeys(steps []RouteStep, stepIndex int) []lookupKey {
	arrival := s.now().Add(arrivalOffset(steps, stepIndex)).In(s.loc)

	year, month, day := arrival.Date()
	hour, minute := arrival.Hour(), arrival.Minute()

	// Round to the nearest half hour using 15-minute intervals.
	var primary time.Time
	switch {
	case minute >= 45:
		primary = time.Date(year, month, day, hour+1, 0, 0, 0, s.loc)
	case minute < 15:
		primary = time.Date(year, month, day, hour, 0, 0, 0, s.loc)
	default:
		primary = time.Date(year, month, day, hour, 30, 0, 0, s.loc)
	}

	secondary := primary
	if primary.Minute() != 0 {
		secondaryHour := hour
		if minute >= 30 {
			secondaryHour++
		}
		secondary = time.Date(year, month, day, secondaryHour, 0, 0, 0, s.loc)
	}

	return []lookupKey{toLookupKey(primary), toLookupKey(secondary)}
}

func toLookupKey(t time.Time) lookupKey {
	return lookupKey{
		day:       t.Weekday().String(),
		timeLabel: t.Format(timeLabelLayout),
	}
}
