package domain

import "fmt"

// DeadlineKind classifies how binding a draft's deadline is.
type DeadlineKind string

const (
	DeadlineHard DeadlineKind = "hard"
	DeadlineSoft DeadlineKind = "soft"
	DeadlineNone DeadlineKind = "none"
)

func NewDeadlineKind(s string) (DeadlineKind, error) {
	switch s {
	case string(DeadlineHard), string(DeadlineSoft), string(DeadlineNone):
		return DeadlineKind(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidDeadlineKind, s)
	}
}

// EstimationMode selects how a draft's total workload is derived.
type EstimationMode string

const (
	EstimationTotal   EstimationMode = "total"
	EstimationSession EstimationMode = "session"
)

func NewEstimationMode(s string) (EstimationMode, error) {
	switch s {
	case string(EstimationTotal), string(EstimationSession):
		return EstimationMode(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidEstimationMode, s)
	}
}

// TaskDraft is the in-flight task snapshot under validation. It is owned by
// the caller; the engine reads it and returns a verdict without mutating it.
type TaskDraft struct {
	EstimatedHours       float64
	SessionDurationHours float64
	EstimationMode       EstimationMode
	Deadline             Date
	DeadlineKind         DeadlineKind
	StartDate            Date
	Frequency            Frequency
	OneSitting           bool
}

// EffectiveTotalHours resolves the draft's workload: the direct estimate, or
// the session-duration projection when the draft estimates per session. The
// projection needs a real deadline; without one it resolves to zero.
func (d TaskDraft) EffectiveTotalHours() float64 {
	if d.EstimationMode != EstimationSession {
		return d.EstimatedHours
	}

	if d.Deadline.IsZero() || d.DeadlineKind == DeadlineNone {
		return 0
	}

	return ProjectedTotalHours(d.SessionDurationHours, d.Frequency, d.StartDate, d.Deadline)
}

// DraftVerdict aggregates every feasibility signal for one draft. Errors
// block acceptance; Conflict and Restrictions are advisory.
type DraftVerdict struct {
	Valid        bool
	Errors       []string
	Conflict     ConflictResult
	Restrictions FrequencyRestrictions
	Slot         SlotResult
}

// ValidateDraft runs the full pre-acceptance check. today is threaded in
// explicitly so the verdict is deterministic under test.
func ValidateDraft(
	draft TaskDraft,
	today Date,
	settings Settings,
	commitments []*Commitment,
	plans []PlannedDay,
) DraftVerdict {
	var verdict DraftVerdict

	hours := draft.EffectiveTotalHours()
	if hours <= 0 {
		verdict.Errors = append(verdict.Errors, "time estimation is required")
	}

	if !draft.Deadline.IsZero() && draft.Deadline.Before(today) {
		verdict.Errors = append(verdict.Errors, "deadline cannot be in the past")
	}

	if !draft.StartDate.IsZero() && draft.StartDate.Before(today) {
		verdict.Errors = append(verdict.Errors, "start date cannot be in the past")
	}

	if draft.OneSitting {
		validateOneSitting(&verdict, draft, hours, settings, commitments, plans)
	}

	deadlineSet := !draft.Deadline.IsZero() && draft.DeadlineKind != DeadlineNone

	if deadlineSet {
		start := draft.StartDate
		if start.IsZero() {
			start = today
		}

		verdict.Restrictions = RestrictionsFor(start, draft.Deadline)

		if !draft.OneSitting && hours > 0 {
			verdict.Conflict = CheckFrequencyConflict(
				draft.Frequency,
				hours,
				draft.Deadline,
				start,
				settings.DailyAvailableHours(),
			)
		}
	}

	verdict.Valid = len(verdict.Errors) == 0

	return verdict
}

func validateOneSitting(
	verdict *DraftVerdict,
	draft TaskDraft,
	hours float64,
	settings Settings,
	commitments []*Commitment,
	plans []PlannedDay,
) {
	if draft.Deadline.IsZero() {
		verdict.Errors = append(verdict.Errors, "one-sitting tasks require a deadline")

		return
	}

	if hours > settings.DailyAvailableHours() {
		verdict.Errors = append(verdict.Errors, "one-sitting task duration exceeds the daily available hours")

		return
	}

	if hours <= 0 {
		return
	}

	verdict.Slot = FindSlot(draft.Deadline, hours, settings, commitments, plans)
	if !verdict.Slot.Found {
		verdict.Errors = append(verdict.Errors, fmt.Sprintf(
			"no available time slot on the deadline date: %s", verdict.Slot.Reason,
		))
	}
}
