package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/repcoach/pkg/models"
)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 30, 0, 0, time.UTC)
}

func dayStart(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dayEnd(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 23, 59, 59, 999_000_000, time.UTC)
}

func TestResolveDateRange(t *testing.T) {
	// Friday
	now := at(2024, time.March, 15, 14)

	tests := []struct {
		kind      RangeKind
		wantStart time.Time
		wantEnd   time.Time
	}{
		{RangeToday, dayStart(2024, 3, 15), dayEnd(2024, 3, 15)},
		{RangeYesterday, dayStart(2024, 3, 14), dayEnd(2024, 3, 14)},
		{RangeThisWeek, dayStart(2024, 3, 11), dayEnd(2024, 3, 15)},
		{RangeLastWeek, dayStart(2024, 3, 4), dayEnd(2024, 3, 10)},
		{RangeLast7Days, dayStart(2024, 3, 9), dayEnd(2024, 3, 15)},
		{RangeLast30Days, dayStart(2024, 2, 15), dayEnd(2024, 3, 15)},
		{RangeThisMonth, dayStart(2024, 3, 1), dayEnd(2024, 3, 15)},
		{RangeLastMonth, dayStart(2024, 2, 1), dayEnd(2024, 2, 29)},
		{RangeThisQuarter, dayStart(2024, 1, 1), dayEnd(2024, 3, 15)},
		{RangeLastQuarter, dayStart(2023, 10, 1), dayEnd(2023, 12, 31)},
		{RangeThisYear, dayStart(2024, 1, 1), dayEnd(2024, 3, 15)},
		{RangeLastYear, dayStart(2023, 1, 1), dayEnd(2023, 12, 31)},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			rng, err := ResolveDateRange(tt.kind, nil, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, rng.Start)
			assert.Equal(t, tt.wantEnd, rng.End)
		})
	}
}

func TestResolveDateRange_Last7DaysFormatting(t *testing.T) {
	rng, err := ResolveDateRange(RangeLast7Days, nil, at(2024, time.March, 15, 9))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-09T00:00:00.000", rng.Start.Format("2006-01-02T15:04:05.000"))
	assert.Equal(t, "2024-03-15T23:59:59.999", rng.End.Format("2006-01-02T15:04:05.000"))
}

func TestResolveDateRange_ThisWeekStartsMonday(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"wednesday", at(2024, time.March, 13, 10), dayStart(2024, 3, 11)},
		{"monday", at(2024, time.March, 11, 0), dayStart(2024, 3, 11)},
		{"sunday", at(2024, time.March, 17, 23), dayStart(2024, 3, 11)},
		{"across month", at(2024, time.May, 1, 8), dayStart(2024, 4, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := ResolveDateRange(RangeThisWeek, nil, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rng.Start)
			assert.Equal(t, time.Monday, rng.Start.Weekday())
		})
	}
}

func TestResolveDateRange_QuarterBoundaries(t *testing.T) {
	rng, err := ResolveDateRange(RangeLastQuarter, nil, at(2024, time.August, 20, 12))
	require.NoError(t, err)
	assert.Equal(t, dayStart(2024, 4, 1), rng.Start)
	assert.Equal(t, dayEnd(2024, 6, 30), rng.End)

	rng, err = ResolveDateRange(RangeThisQuarter, nil, at(2024, time.December, 31, 12))
	require.NoError(t, err)
	assert.Equal(t, dayStart(2024, 10, 1), rng.Start)
}

func TestResolveDateRange_LastMonthWrapsYear(t *testing.T) {
	rng, err := ResolveDateRange(RangeLastMonth, nil, at(2024, time.January, 10, 12))
	require.NoError(t, err)
	assert.Equal(t, dayStart(2023, 12, 1), rng.Start)
	assert.Equal(t, dayEnd(2023, 12, 31), rng.End)
}

func TestResolveDateRange_UsesLocationOfNow(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	now := time.Date(2024, time.March, 15, 1, 0, 0, 0, shanghai)

	rng, err := ResolveDateRange(RangeToday, nil, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, shanghai), rng.Start)
	assert.Equal(t, shanghai, rng.End.Location())
}

func TestResolveDateRange_Custom(t *testing.T) {
	now := at(2024, time.March, 15, 12)

	t.Run("normalizes to day bounds", func(t *testing.T) {
		rng, err := ResolveDateRange(RangeCustom, &CustomRange{Start: "2024-02-01", End: "2024-02-10T08:00:00"}, now)
		require.NoError(t, err)
		assert.Equal(t, dayStart(2024, 2, 1), rng.Start)
		assert.Equal(t, dayEnd(2024, 2, 10), rng.End)
	})

	t.Run("single day", func(t *testing.T) {
		rng, err := ResolveDateRange(RangeCustom, &CustomRange{Start: "2024-02-01", End: "2024-02-01"}, now)
		require.NoError(t, err)
		assert.Equal(t, dayEnd(2024, 2, 1), rng.End)
	})

	missing := []struct {
		name   string
		custom *CustomRange
	}{
		{"nil", nil},
		{"no start", &CustomRange{End: "2024-02-01"}},
		{"no end", &CustomRange{Start: "2024-02-01"}},
		{"neither", &CustomRange{}},
	}
	for _, tt := range missing {
		t.Run("missing bound "+tt.name, func(t *testing.T) {
			_, err := ResolveDateRange(RangeCustom, tt.custom, now)
			assert.ErrorIs(t, err, ErrMissingBound)
		})
	}

	t.Run("invalid bound", func(t *testing.T) {
		_, err := ResolveDateRange(RangeCustom, &CustomRange{Start: "yesterday", End: "2024-02-01"}, now)
		assert.ErrorIs(t, err, ErrInvalidBound)
	})

	t.Run("inverted", func(t *testing.T) {
		_, err := ResolveDateRange(RangeCustom, &CustomRange{Start: "2024-03-01", End: "2024-02-01"}, now)
		assert.ErrorIs(t, err, ErrInvertedRange)
	})
}

func TestResolveDateRange_UnknownKind(t *testing.T) {
	_, err := ResolveDateRange(RangeKind("fortnight"), nil, time.Now())
	assert.ErrorIs(t, err, ErrUnknownRange)
	assert.False(t, IsValidRangeKind("fortnight"))
	assert.True(t, IsValidRangeKind(RangeLastQuarter))
}

func TestFilterInRange(t *testing.T) {
	rng := DateRange{Start: dayStart(2024, 3, 9), End: dayEnd(2024, 3, 15)}
	interactions := []models.Interaction{
		{ID: "before", Date: "2024-03-08T23:59:59"},
		{ID: "start", Date: "2024-03-09"},
		{ID: "middle", Date: "2024-03-12T10:00:00Z"},
		{ID: "end", Date: "2024-03-15T23:59:59.999"},
		{ID: "after", Date: "2024-03-16"},
		{ID: "broken", Date: "someday"},
		{ID: "empty", Date: ""},
	}

	got := FilterInRange(interactions, rng)

	ids := make([]string, 0, len(got))
	for _, in := range got {
		ids = append(ids, in.ID)
	}
	assert.Equal(t, []string{"start", "middle", "end"}, ids)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2024-03-15", true, dayStart(2024, 3, 15)},
		{"2024/03/15", true, dayStart(2024, 3, 15)},
		{"2024-03-15 08:15", true, time.Date(2024, 3, 15, 8, 15, 0, 0, time.UTC)},
		{"2024-03-15T08:15:00+08:00", true, time.Date(2024, 3, 15, 0, 15, 0, 0, time.UTC)},
		{" 2024-03-15T08:15:00.5Z ", true, time.Date(2024, 3, 15, 8, 15, 0, 500_000_000, time.UTC)},
		{"15/03/2024", false, time.Time{}},
		{"", false, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in, time.UTC)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			}
		})
	}
}
