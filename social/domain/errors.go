package domain

import "errors"

var (
	// ErrProfileNotFound is returned when no marketing profile matches
	ErrProfileNotFound = errors.New("marketing profile not found")

	// ErrPlanNotFound is returned when no content plan matches
	ErrPlanNotFound = errors.New("content plan not found")

	// ErrPostNotFound is returned when no content post matches
	ErrPostNotFound = errors.New("content post not found")

	// ErrInvalidSchedule is returned for a cadence outside MWF / TU_TH_SA
	ErrInvalidSchedule = errors.New("unsupported schedule type")

	// ErrNoPostingDays is returned when a month yields zero posting dates
	ErrNoPostingDays = errors.New("no posting days found for this month/schedule")
)

// GenerationFailedError carries the joined per-week failure messages of
// a generation run that produced no posts at all.
type GenerationFailedError string

func (e GenerationFailedError) Error() string {
	return string(e)
}
