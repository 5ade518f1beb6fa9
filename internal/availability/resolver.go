// Package availability derives calendar views from declared availability
// intervals and ledger bookings. It is pure computation: callers load the
// rows, Resolve classifies the days.
package availability

import (
	"time"

	"sportshare-backend/internal/domain"
)

const DateLayout = "2006-01-02"

// DefaultWindowDays is the calendar window applied when the caller does
// not bound the query.
const DefaultWindowDays = 90

// Window is the half-open day range [Start, End) being classified.
type Window struct {
	Start time.Time
	End   time.Time
}

type span struct {
	start time.Time
	end   time.Time
}

func (s span) contains(d time.Time) bool {
	return !d.Before(s.start) && d.Before(s.end)
}

// Resolve walks the window day by day and buckets each day into the three
// disjoint-by-contract sets:
//
//   - booked:    covered by a blocking-status booking, regardless of
//     declared availability
//   - available: covered by a declared 'available' interval and not booked
//   - pending:   covered by a pending booking and not booked
//
// Available and pending may both report the same day; a pending hold does
// not subtract from availability. Day-by-day membership is deliberately
// simple and correct for arbitrarily irregular interval sets; windows are
// capped by the caller so the O(days x bookings) cost stays small.
func Resolve(w Window, intervals []domain.AvailabilityInterval, bookings []domain.Booking) *domain.Calendar {
	var declared []span
	for _, iv := range intervals {
		if iv.Kind != "" && iv.Kind != domain.IntervalKindAvailable {
			continue
		}
		if s, ok := parseSpan(iv.StartDate, iv.EndDate); ok {
			declared = append(declared, s)
		}
	}

	var blocking, pending []span
	for _, b := range bookings {
		s, ok := parseSpan(b.StartDate, b.EndDate)
		if !ok {
			continue
		}
		switch {
		case b.Status.Blocks():
			blocking = append(blocking, s)
		case b.Status == domain.BookingStatusPending:
			pending = append(pending, s)
		}
	}

	cal := &domain.Calendar{
		Start:         w.Start.Format(DateLayout),
		End:           w.End.Format(DateLayout),
		AvailableDays: []string{},
		BookedDays:    []string{},
		PendingDays:   []string{},
	}

	for d := w.Start; d.Before(w.End); d = d.AddDate(0, 0, 1) {
		day := d.Format(DateLayout)
		booked := anyContains(blocking, d)
		if booked {
			cal.BookedDays = append(cal.BookedDays, day)
		} else if anyContains(declared, d) {
			cal.AvailableDays = append(cal.AvailableDays, day)
		}
		if !booked && anyContains(pending, d) {
			cal.PendingDays = append(cal.PendingDays, day)
		}
	}
	return cal
}

// ParseDate parses a calendar date in the wire format used throughout the
// booking core.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func parseSpan(start, end string) (span, bool) {
	s, err := ParseDate(start)
	if err != nil {
		return span{}, false
	}
	e, err := ParseDate(end)
	if err != nil {
		return span{}, false
	}
	return span{start: s, end: e}, true
}

func anyContains(spans []span, d time.Time) bool {
	for _, s := range spans {
		if s.contains(d) {
			return true
		}
	}
	return false
}
