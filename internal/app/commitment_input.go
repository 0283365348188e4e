package app

// CreateCommitmentInput carries a new fixed obligation. Weekdays use Go's
// numbering, 0 for Sunday through 6 for Saturday. A commitment recurs on its
// weekday set or, when the set is empty, occurs on its explicit occurrence
// dates only.
type CreateCommitmentInput struct {
	UserID      string
	Title       string
	WindowStart string
	WindowEnd   string
	Weekdays    []int
	Occurrences []string
	ValidFrom   string
	ValidUntil  string
	Exceptions  []string
}

type GetCommitmentInput struct {
	CommitmentID string
}

type ListCommitmentsInput struct {
	UserID string
}

type UpdateCommitmentInput struct {
	CommitmentID string
	Title        string
	WindowStart  string
	WindowEnd    string
	Weekdays     []int
	Occurrences  []string
}

type DeleteCommitmentInput struct {
	CommitmentID string
}
