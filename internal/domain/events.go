package domain

import (
	"github.com/google/uuid"
)

// ExecutionFinishedEvent is published to Redis Pub/Sub by the recorder once
// an audit record has been persisted.
type ExecutionFinishedEvent struct {
	LogID         uuid.UUID       `json:"log_id"`
	UserID        uuid.UUID       `json:"user_id"`
	WorkflowID    string          `json:"workflow_id"`
	RequestMethod string          `json:"request_method"`
	Status        ExecutionStatus `json:"status"`
	ExecutionTime int64           `json:"execution_time"`
}
