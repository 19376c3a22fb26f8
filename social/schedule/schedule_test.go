package schedule

import (
	"testing"
	"time"

	"github.com/ezdiharweb/agency-api/social/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostingDates_MWF_March2026(t *testing.T) {
	// March 2026 starts on a Sunday and has 31 days:
	// Mondays on 2,9,16,23,30 / Wednesdays on 4,11,18,25 / Fridays on 6,13,20,27.
	dates, err := PostingDates(2026, 3, domain.ScheduleMWF)
	require.NoError(t, err)
	require.Len(t, dates, 13)

	wantDays := []int{2, 4, 6, 9, 11, 13, 16, 18, 20, 23, 25, 27, 30}
	for i, d := range dates {
		assert.Equal(t, wantDays[i], d.Day())
		assert.Equal(t, time.March, d.Month())
		assert.Equal(t, 2026, d.Year())
	}

	weeks := GroupWeeks(dates)
	require.Len(t, weeks, 5)
	for i := 0; i < 4; i++ {
		assert.Len(t, weeks[i], 3)
	}
	assert.Len(t, weeks[4], 1)
}

func TestPostingDates_WeekdaysMatchCadence(t *testing.T) {
	cases := []struct {
		cadence domain.ScheduleType
		allowed map[time.Weekday]bool
	}{
		{domain.ScheduleMWF, map[time.Weekday]bool{time.Monday: true, time.Wednesday: true, time.Friday: true}},
		{domain.ScheduleTuThSa, map[time.Weekday]bool{time.Tuesday: true, time.Thursday: true, time.Saturday: true}},
	}

	for _, tc := range cases {
		for year := 2024; year <= 2027; year++ {
			for month := 1; month <= 12; month++ {
				dates, err := PostingDates(year, month, tc.cadence)
				require.NoError(t, err)
				require.NotEmpty(t, dates)

				for i, d := range dates {
					assert.True(t, tc.allowed[d.Weekday()],
						"%s %d-%02d: %s has weekday %s outside cadence", tc.cadence, year, month, d, d.Weekday())
					assert.Equal(t, time.Month(month), d.Month())
					if i > 0 {
						assert.True(t, dates[i-1].Before(d), "dates must be strictly ascending")
					}
				}
			}
		}
	}
}

func TestPostingDates_InvalidCadence(t *testing.T) {
	_, err := PostingDates(2026, 3, domain.ScheduleType("DAILY"))
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
}

func TestGroupWeeks_ConcatReproducesInput(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 12, 13, 14} {
		dates := make([]time.Time, n)
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := range dates {
			dates[i] = base.AddDate(0, 0, i)
		}

		weeks := GroupWeeks(dates)

		var flat []time.Time
		for _, w := range weeks {
			assert.LessOrEqual(t, len(w), PostsPerWeek)
			assert.NotEmpty(t, w)
			flat = append(flat, w...)
		}
		require.Equal(t, dates, flat, "concatenating groups must reproduce the input for n=%d", n)
	}
}

func TestGroupWeeks_Empty(t *testing.T) {
	assert.Nil(t, GroupWeeks(nil))
}
