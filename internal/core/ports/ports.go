package ports

import (
	"context"

	"flowgate/internal/domain"

	"github.com/google/uuid"
)

// WorkflowRepository represents the workflow configuration storage operations
type WorkflowRepository interface {
	Create(ctx context.Context, workflow *domain.Workflow) error
	Update(ctx context.Context, workflow *domain.Workflow) error
	Delete(ctx context.Context, userID uuid.UUID, workflowID string) error

	// FindByWorkflowID resolves a public endpoint invocation. Lookup is by
	// the external identifier alone; execution is not scoped to a caller.
	FindByWorkflowID(ctx context.Context, workflowID string) (*domain.Workflow, error)

	FindByUserAndWorkflowID(ctx context.Context, userID uuid.UUID, workflowID string) (*domain.Workflow, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Workflow, error)
}

// LogFilter narrows a log listing. Zero values mean "no filter".
type LogFilter struct {
	UserID     uuid.UUID
	WorkflowID string
	Status     domain.ExecutionStatus
	Page       int
	Limit      int
}

// LogRepository represents the audit record storage operations
type LogRepository interface {
	Create(ctx context.Context, log *domain.WorkflowLog) error
	List(ctx context.Context, filter LogFilter) ([]domain.WorkflowLog, int64, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.WorkflowLog, error)
	DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	DeleteOlderThan(ctx context.Context, userID uuid.UUID, days int) (int64, error)
	Stats(ctx context.Context, userID uuid.UUID, days int) (*domain.LogStats, error)
}

// UserRepository represents the console account storage operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// TokenRepository represents the stored upstream credential operations
type TokenRepository interface {
	Create(ctx context.Context, token *domain.AccessToken) error
	Update(ctx context.Context, token *domain.AccessToken) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.AccessToken, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AccessToken, error)

	// ExistsConflict reports whether another token of the same user already
	// uses the given name or value. exclude skips one id on updates.
	ExistsConflict(ctx context.Context, userID uuid.UUID, name, value string, exclude uuid.UUID) (bool, error)

	// HasActiveValue reports whether the user has an active stored token
	// with exactly this value.
	HasActiveValue(ctx context.Context, userID uuid.UUID, value string) (bool, error)
}

// EventBus represents the execution event operations
type EventBus interface {
	// Publish "an execution was recorded" to Redis Pub/Sub
	PublishExecutionFinished(ctx context.Context, event domain.ExecutionFinishedEvent) error

	// Subscribe to recorded executions
	SubscribeExecutions(ctx context.Context) (<-chan domain.ExecutionFinishedEvent, error)
}
