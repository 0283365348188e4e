package domain

// SessionBlock is a previously committed work block for some task.
type SessionBlock struct {
	window TimeWindow
	taskID TaskID
}

func NewSessionBlock(window TimeWindow, taskID TaskID) (SessionBlock, error) {
	if window.IsZero() {
		return SessionBlock{}, ErrInvalidTimeWindow
	}

	if taskID.IsZero() {
		return SessionBlock{}, ErrEmptySessionTaskID
	}

	return SessionBlock{window: window, taskID: taskID}, nil
}

func (b SessionBlock) Window() TimeWindow {
	return b.window
}

func (b SessionBlock) TaskID() TaskID {
	return b.taskID
}

// PlannedDay is the set of session blocks already placed on one calendar
// date. Blocks are assumed non-overlapping; the upstream planner validates
// that before they reach the engine.
type PlannedDay struct {
	date   Date
	blocks []SessionBlock
}

func NewPlannedDay(date Date, blocks []SessionBlock) (PlannedDay, error) {
	if date.IsZero() {
		return PlannedDay{}, ErrInvalidDate
	}

	return PlannedDay{date: date, blocks: blocks}, nil
}

func (p PlannedDay) Date() Date {
	return p.date
}

func (p PlannedDay) Blocks() []SessionBlock {
	return p.blocks
}

func (p PlannedDay) IsZero() bool {
	return p.date.IsZero()
}
