package domain

import (
	"fmt"
	"math"
	"sort"
)

// SlotResult is the outcome of a one-sitting slot search. When Found is
// false, Reason names the limiting factor in a form the caller can render.
type SlotResult struct {
	Found  bool
	Window TimeWindow
	Reason string
}

type interval struct {
	start int
	end   int
}

// FindSlot searches date's study window, minus the occupied intervals from
// applicable commitments and already planned session blocks, for the
// earliest free contiguous block of durationHours. Earliest placement wins
// so the rest of the day keeps maximal slack.
//
// Every input problem is reported through the result value; there are no
// error returns here.
func FindSlot(
	date Date,
	durationHours float64,
	settings Settings,
	commitments []*Commitment,
	plans []PlannedDay,
) SlotResult {
	durationMinutes := int(math.Round(durationHours * 60))
	if durationHours <= 0 || durationMinutes <= 0 {
		return SlotResult{Reason: "requested duration must be positive"}
	}

	if settings.DailyAvailableHours() <= 0 {
		return SlotResult{Reason: "daily available hours budget is zero"}
	}

	if _, configured := settings.StudyWindow(); !configured {
		// Full-day fallback: the daily budget caps the slot duration.
		if durationHours > settings.DailyAvailableHours() {
			return SlotResult{Reason: fmt.Sprintf(
				"requested duration %s exceeds the daily available hours budget of %s",
				formatMinutes(durationMinutes),
				formatMinutes(int(math.Round(settings.DailyAvailableHours()*60))),
			)}
		}
	}

	window := StudyWindowFor(date, settings)

	occupied := collectOccupied(date, window, commitments, plans)
	merged := mergeIntervals(occupied)

	cursor := window.Start().Minutes()
	largestGap := 0

	for _, iv := range merged {
		if gap := iv.start - cursor; gap > 0 {
			if gap >= durationMinutes {
				return foundSlot(cursor, durationMinutes)
			}

			if gap > largestGap {
				largestGap = gap
			}
		}

		if iv.end > cursor {
			cursor = iv.end
		}
	}

	if gap := window.End().Minutes() - cursor; gap > 0 {
		if gap >= durationMinutes {
			return foundSlot(cursor, durationMinutes)
		}

		if gap > largestGap {
			largestGap = gap
		}
	}

	if largestGap == 0 {
		return SlotResult{Reason: fmt.Sprintf(
			"day is fully booked within the %s study window", window,
		)}
	}

	return SlotResult{Reason: fmt.Sprintf(
		"largest free block is %s, shorter than the requested %s",
		formatMinutes(largestGap),
		formatMinutes(durationMinutes),
	)}
}

func collectOccupied(date Date, window TimeWindow, commitments []*Commitment, plans []PlannedDay) []interval {
	var occupied []interval

	for _, c := range commitments {
		if c == nil || !c.AppliesOn(date) {
			continue
		}

		occupied = appendClipped(occupied, c.Window(), window)
	}

	for _, day := range plans {
		if !day.Date().Equal(date) {
			continue
		}

		for _, block := range day.Blocks() {
			occupied = appendClipped(occupied, block.Window(), window)
		}
	}

	return occupied
}

// appendClipped clips candidate to the study window bounds and drops it when
// nothing of it falls inside.
func appendClipped(occupied []interval, candidate, window TimeWindow) []interval {
	start := candidate.Start().Minutes()
	end := candidate.End().Minutes()

	if start < window.Start().Minutes() {
		start = window.Start().Minutes()
	}

	if end > window.End().Minutes() {
		end = window.End().Minutes()
	}

	if start >= end {
		return occupied
	}

	return append(occupied, interval{start: start, end: end})
}

func mergeIntervals(intervals []interval) []interval {
	if len(intervals) == 0 {
		return nil
	}

	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].start == intervals[j].start {
			return intervals[i].end < intervals[j].end
		}

		return intervals[i].start < intervals[j].start
	})

	merged := []interval{intervals[0]}

	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]

		// Adjacent intervals leave no usable gap, so they merge too.
		if iv.start <= last.end {
			if iv.end > last.end {
				last.end = iv.end
			}

			continue
		}

		merged = append(merged, iv)
	}

	return merged
}

func foundSlot(startMinutes, durationMinutes int) SlotResult {
	start, err := ClockTimeFromMinutes(startMinutes)
	if err != nil {
		return SlotResult{Reason: "slot start outside the clock range"}
	}

	end, err := ClockTimeFromMinutes(startMinutes + durationMinutes)
	if err != nil {
		return SlotResult{Reason: "slot end outside the clock range"}
	}

	window, err := NewTimeWindow(start, end)
	if err != nil {
		return SlotResult{Reason: err.Error()}
	}

	return SlotResult{Found: true, Window: window}
}

func formatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60

	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
