package logging

import (
	"context"

	"github.com/google/uuid"
)

// Module labels log records with the service area that produced them.
type Module string

const (
	ModuleFeasibility Module = "feasibility"
	ModuleCommitment  Module = "commitment"
	ModulePlan        Module = "plan"
	ModuleTask        Module = "task"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	moduleKey    contextKey = "module"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}

	return ""
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	if m, ok := ctx.Value(moduleKey).(Module); ok {
		return m
	}

	return ""
}

// ValidateAndExtractRequestID returns the incoming request id when it is a
// well-formed UUID, otherwise a freshly generated one.
func ValidateAndExtractRequestID(raw string) string {
	if raw != "" {
		if _, err := uuid.Parse(raw); err == nil {
			return raw
		}
	}

	return uuid.NewString()
}
