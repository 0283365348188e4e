package pubsub

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

const TopicTaskAccepted = "task.accepted"

// TaskAcceptedEvent is the payload published when a task draft passes
// the feasibility checks and is accepted into the plan.
type TaskAcceptedEvent struct {
	TaskID         string    `json:"task_id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	EstimatedHours float64   `json:"estimated_hours"`
	Deadline       string    `json:"deadline,omitempty"`
	Frequency      string    `json:"frequency"`
	OneSitting     bool      `json:"one_sitting"`
	AcceptedAt     time.Time `json:"accepted_at"`
}

type Publisher interface {
	PublishTaskAccepted(ctx context.Context, event TaskAcceptedEvent) error
	io.Closer
}
