// Package schedule computes the posting calendar for a content plan:
// which dates of a month receive posts under a given weekly cadence,
// and how those dates group into generation batches.
package schedule

import (
	"time"

	"github.com/ezdiharweb/agency-api/social/domain"
)

// PostsPerWeek is the batch size for one generation round.
const PostsPerWeek = 3

// PostingDates returns every date of the given month whose weekday belongs
// to the cadence's weekday set, in ascending order. Month is 1-12.
func PostingDates(year, month int, cadence domain.ScheduleType) ([]time.Time, error) {
	if !cadence.Valid() {
		return nil, domain.ErrInvalidSchedule
	}

	target := make(map[time.Weekday]bool, PostsPerWeek)
	for _, wd := range cadence.Weekdays() {
		target[wd] = true
	}

	// Day 0 of the next month is the last day of this one.
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	var dates []time.Time
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		if target[date.Weekday()] {
			dates = append(dates, date)
		}
	}

	if len(dates) == 0 {
		// Cannot happen for real Gregorian months, but the pipeline treats
		// it as a fatal precondition rather than calling the model.
		return nil, domain.ErrNoPostingDays
	}

	return dates, nil
}

// GroupWeeks partitions the ordered date list into consecutive chunks of
// PostsPerWeek. The final chunk may be shorter; that is expected for
// months whose posting-day count is not a multiple of three.
func GroupWeeks(dates []time.Time) [][]time.Time {
	var weeks [][]time.Time
	for i := 0; i < len(dates); i += PostsPerWeek {
		end := i + PostsPerWeek
		if end > len(dates) {
			end = len(dates)
		}
		weeks = append(weeks, dates[i:end])
	}
	return weeks
}
