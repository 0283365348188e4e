package domain

import (
	"fmt"
	"math"
)

// Frequency is the user's chosen work cadence for a multi-session task.
type Frequency string

const (
	FrequencyDaily        Frequency = "daily"
	FrequencyThreePerWeek Frequency = "3x-week"
	FrequencyWeekly       Frequency = "weekly"
	FrequencyFlexible     Frequency = "flexible"
)

// flexibleDayRatio is the assumed share of days actually worked under the
// flexible cadence. A heuristic policy value, not a derived law.
const flexibleDayRatio = 0.7

// Cadences that need a minimum span before the deadline to make sense.
const (
	minDaysForWeekly       = 14
	minDaysForThreePerWeek = 7
)

func NewFrequency(s string) (Frequency, error) {
	switch s {
	case string(FrequencyDaily), string(FrequencyThreePerWeek),
		string(FrequencyWeekly), string(FrequencyFlexible):
		return Frequency(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFrequency, s)
	}
}

// escalationOrder lists cadences from least to most dense. A conflicted
// cadence is escalated rightwards until capacity suffices.
var escalationOrder = []Frequency{
	FrequencyFlexible,
	FrequencyWeekly,
	FrequencyThreePerWeek,
	FrequencyDaily,
}

func (f Frequency) densityRank() int {
	for i, cadence := range escalationOrder {
		if cadence == f {
			return i
		}
	}

	return -1
}

func (f Frequency) DenserThan(other Frequency) bool {
	return f.densityRank() > other.densityRank()
}

// ProjectedWorkDays estimates how many of totalDays the cadence actually
// uses for work. The three-times-weekly and flexible formulas are
// approximations rather than exact calendar enumeration.
func ProjectedWorkDays(f Frequency, totalDays int) int {
	if totalDays <= 0 {
		return 0
	}

	switch f {
	case FrequencyThreePerWeek:
		remainder := totalDays % 7
		if remainder > 3 {
			remainder = 3
		}

		// Divide before scaling so partial weeks contribute fractional
		// thirds; 12 days is 5 projected days plus the remainder, not 3.
		return int(math.Floor(float64(totalDays)/7*3)) + remainder
	case FrequencyWeekly:
		return (totalDays + 6) / 7
	case FrequencyFlexible:
		return int(math.Ceil(float64(totalDays) * flexibleDayRatio))
	default:
		return totalDays
	}
}

// ConflictResult is the advisory verdict of a cadence-deadline check. It
// never blocks submission; the caller decides whether to warn or adjust.
type ConflictResult struct {
	HasConflict          bool
	Reason               string
	RecommendedFrequency Frequency
}

// CheckFrequencyConflict estimates whether the cadence accumulates
// totalHoursNeeded between startDate and deadline (both days counted as
// available) given the daily hours budget. On a shortfall it proposes the
// least dense cadence that would close the gap, when one exists.
func CheckFrequencyConflict(
	frequency Frequency,
	totalHoursNeeded float64,
	deadline Date,
	startDate Date,
	dailyAvailableHours float64,
) ConflictResult {
	if totalHoursNeeded <= 0 {
		return ConflictResult{
			HasConflict: true,
			Reason:      "total hours needed must be positive",
		}
	}

	if deadline.IsZero() || startDate.IsZero() {
		return ConflictResult{
			HasConflict: true,
			Reason:      "start date and deadline are required",
		}
	}

	if deadline.Before(startDate) {
		return ConflictResult{
			HasConflict: true,
			Reason:      "deadline is before the start date",
		}
	}

	if dailyAvailableHours <= 0 {
		return ConflictResult{
			HasConflict: true,
			Reason:      "daily available hours budget is zero",
		}
	}

	totalDays := startDate.DaysUntil(deadline) + 1

	workDays := ProjectedWorkDays(frequency, totalDays)

	capacity := float64(workDays) * dailyAvailableHours
	if sufficient(capacity, totalHoursNeeded) {
		return ConflictResult{}
	}

	result := ConflictResult{
		HasConflict: true,
		Reason: fmt.Sprintf(
			"%s cadence yields %d work days (%.1fh capacity) before %s, but %.1fh are needed",
			frequency, workDays, capacity, deadline, totalHoursNeeded,
		),
	}

	for _, denser := range escalationOrder {
		if !denser.DenserThan(frequency) {
			continue
		}

		denserCapacity := float64(ProjectedWorkDays(denser, totalDays)) * dailyAvailableHours
		if sufficient(denserCapacity, totalHoursNeeded) {
			result.RecommendedFrequency = denser

			break
		}
	}

	return result
}

// sufficient compares capacity against need with a small tolerance so that
// fractional-hour arithmetic does not flip exact fits into conflicts.
func sufficient(capacityHours, neededHours float64) bool {
	return capacityHours+1e-9 >= neededHours
}

// FrequencyRestrictions marks cadences whose minimum span does not fit
// before the deadline.
type FrequencyRestrictions struct {
	WeeklyUnavailable       bool
	ThreePerWeekUnavailable bool
}

// RestrictionsFor disables sparse cadences when too few days remain:
// weekly needs two weeks before the deadline, three-times-weekly one.
// The day count here excludes the start day, matching the span shown to
// the user as "days until deadline".
func RestrictionsFor(startDate, deadline Date) FrequencyRestrictions {
	if startDate.IsZero() || deadline.IsZero() {
		return FrequencyRestrictions{}
	}

	daysUntil := startDate.DaysUntil(deadline)

	return FrequencyRestrictions{
		WeeklyUnavailable:       daysUntil < minDaysForWeekly,
		ThreePerWeekUnavailable: daysUntil < minDaysForThreePerWeek,
	}
}

// Allows reports whether the cadence remains selectable under the
// restrictions.
func (r FrequencyRestrictions) Allows(f Frequency) bool {
	switch f {
	case FrequencyWeekly:
		return !r.WeeklyUnavailable
	case FrequencyThreePerWeek:
		return !r.ThreePerWeekUnavailable
	default:
		return true
	}
}

// ProjectedTotalHours derives an estimated total workload from a per-session
// duration and the cadence's projected work days between startDate and
// deadline (inclusive). Non-positive inputs project to zero.
func ProjectedTotalHours(sessionDurationHours float64, frequency Frequency, startDate, deadline Date) float64 {
	if sessionDurationHours <= 0 || startDate.IsZero() || deadline.IsZero() || deadline.Before(startDate) {
		return 0
	}

	totalDays := startDate.DaysUntil(deadline) + 1

	return sessionDurationHours * float64(ProjectedWorkDays(frequency, totalDays))
}
