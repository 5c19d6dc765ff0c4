package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/jordanlanch/repcoach/pkg/models"
)

// RangeKind names a symbolic reporting window
type RangeKind string

const (
	RangeToday       RangeKind = "today"
	RangeYesterday   RangeKind = "yesterday"
	RangeThisWeek    RangeKind = "this_week"
	RangeLast7Days   RangeKind = "last_7_days"
	RangeLastWeek    RangeKind = "last_week"
	RangeLast30Days  RangeKind = "last_30_days"
	RangeThisMonth   RangeKind = "this_month"
	RangeLastMonth   RangeKind = "last_month"
	RangeThisQuarter RangeKind = "this_quarter"
	RangeLastQuarter RangeKind = "last_quarter"
	RangeThisYear    RangeKind = "this_year"
	RangeLastYear    RangeKind = "last_year"
	RangeCustom      RangeKind = "custom"
)

var (
	// ErrMissingBound is returned for a custom range without both bounds
	ErrMissingBound = errors.New("custom range requires both start and end dates")
	// ErrInvalidBound is returned when a custom bound cannot be parsed
	ErrInvalidBound = errors.New("custom range bound is not a valid date")
	// ErrInvertedRange is returned when a custom start is after its end
	ErrInvertedRange = errors.New("custom range start is after end")
	// ErrUnknownRange is returned for an unsupported range kind
	ErrUnknownRange = errors.New("unknown date range")
)

// CustomRange carries caller-supplied bounds for RangeCustom
type CustomRange struct {
	Start string
	End   string
}

// DateRange is an inclusive window between two instants
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ResolveDateRange turns a range kind into concrete bounds relative to now.
// Day boundaries are computed in now's location: ranges start at 00:00:00
// and end at 23:59:59.999. Weeks start on Monday. "this_*" ranges end at
// the end of today; "last_N_days" covers today and the N-1 days before it.
func ResolveDateRange(kind RangeKind, custom *CustomRange, now time.Time) (DateRange, error) {
	today := startOfDay(now)
	y, m, _ := today.Date()
	loc := today.Location()

	switch kind {
	case RangeToday:
		return DateRange{Start: today, End: endOfDay(today)}, nil

	case RangeYesterday:
		d := dayOffset(today, -1)
		return DateRange{Start: d, End: endOfDay(d)}, nil

	case RangeThisWeek:
		return DateRange{Start: weekStart(today), End: endOfDay(today)}, nil

	case RangeLastWeek:
		monday := weekStart(today)
		return DateRange{Start: dayOffset(monday, -7), End: endOfDay(dayOffset(monday, -1))}, nil

	case RangeLast7Days:
		return lastNDays(today, 7), nil

	case RangeLast30Days:
		return lastNDays(today, 30), nil

	case RangeThisMonth:
		return DateRange{Start: time.Date(y, m, 1, 0, 0, 0, 0, loc), End: endOfDay(today)}, nil

	case RangeLastMonth:
		return DateRange{
			Start: time.Date(y, m-1, 1, 0, 0, 0, 0, loc),
			End:   endOfDay(time.Date(y, m, 0, 0, 0, 0, 0, loc)),
		}, nil

	case RangeThisQuarter:
		return DateRange{Start: time.Date(y, quarterStart(m), 1, 0, 0, 0, 0, loc), End: endOfDay(today)}, nil

	case RangeLastQuarter:
		// Month arithmetic in time.Date wraps Q1 into the previous year's Q4.
		qs := quarterStart(m)
		return DateRange{
			Start: time.Date(y, qs-3, 1, 0, 0, 0, 0, loc),
			End:   endOfDay(time.Date(y, qs, 0, 0, 0, 0, 0, loc)),
		}, nil

	case RangeThisYear:
		return DateRange{Start: time.Date(y, time.January, 1, 0, 0, 0, 0, loc), End: endOfDay(today)}, nil

	case RangeLastYear:
		return DateRange{
			Start: time.Date(y-1, time.January, 1, 0, 0, 0, 0, loc),
			End:   endOfDay(time.Date(y-1, time.December, 31, 0, 0, 0, 0, loc)),
		}, nil

	case RangeCustom:
		return resolveCustom(custom, loc)
	}

	return DateRange{}, fmt.Errorf("%w: %q", ErrUnknownRange, kind)
}

func resolveCustom(custom *CustomRange, loc *time.Location) (DateRange, error) {
	if custom == nil || custom.Start == "" || custom.End == "" {
		return DateRange{}, ErrMissingBound
	}

	start, ok := ParseDate(custom.Start, loc)
	if !ok {
		return DateRange{}, fmt.Errorf("%w: start %q", ErrInvalidBound, custom.Start)
	}
	end, ok := ParseDate(custom.End, loc)
	if !ok {
		return DateRange{}, fmt.Errorf("%w: end %q", ErrInvalidBound, custom.End)
	}

	rng := DateRange{Start: startOfDay(start.In(loc)), End: endOfDay(end.In(loc))}
	if rng.Start.After(rng.End) {
		return DateRange{}, ErrInvertedRange
	}
	return rng, nil
}

func weekStart(day time.Time) time.Time {
	// Weekday is 0 on Sunday; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	return dayOffset(day, -offset)
}

func lastNDays(today time.Time, n int) DateRange {
	return DateRange{Start: dayOffset(today, -(n - 1)), End: endOfDay(today)}
}

func quarterStart(m time.Month) time.Month {
	return time.Month((int(m)-1)/3*3 + 1)
}

// IsValidRangeKind reports whether kind is supported.
func IsValidRangeKind(kind RangeKind) bool {
	switch kind {
	case RangeToday, RangeYesterday, RangeThisWeek, RangeLast7Days, RangeLastWeek,
		RangeLast30Days, RangeThisMonth, RangeLastMonth, RangeThisQuarter,
		RangeLastQuarter, RangeThisYear, RangeLastYear, RangeCustom:
		return true
	}
	return false
}

// FilterInRange keeps interactions dated inside rng. Interactions whose date
// cannot be parsed are left out. Zone-less dates are read in rng's location.
func FilterInRange(interactions []models.Interaction, rng DateRange) []models.Interaction {
	loc := rng.Start.Location()
	out := make([]models.Interaction, 0)
	for _, in := range interactions {
		t, ok := ParseDate(in.Date, loc)
		if !ok {
			continue
		}
		if rng.Contains(t) {
			out = append(out, in)
		}
	}
	return out
}
