package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ExecutionStatus string

const (
	ExecutionSuccess ExecutionStatus = "success"
	ExecutionError   ExecutionStatus = "error"
	ExecutionTimeout ExecutionStatus = "timeout"
)

// WorkflowLog is the audit record for one gateway invocation attempt. It is
// written exactly once per invocation and never mutated by the gateway.
type WorkflowLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	WorkflowID string    `gorm:"type:varchar(100);index;not null" json:"workflow_id"`

	// RequestMethod is the verb the caller actually used, independent of
	// the workflow's configured method.
	RequestMethod string `gorm:"type:varchar(10);not null" json:"request_method"`

	RequestParams datatypes.JSON `gorm:"type:jsonb" json:"request_params"`
	ResponseData  datatypes.JSON `gorm:"type:jsonb" json:"response_data"`

	// ExecutionTime is measured in milliseconds from pipeline entry to
	// pipeline exit, recorded even when the call fails.
	ExecutionTime int64           `gorm:"not null" json:"execution_time"`
	Status        ExecutionStatus `gorm:"type:varchar(20);index;default:'success'" json:"status"`
	ErrorMessage  *string         `gorm:"type:text" json:"error_message"`

	CreatedAt time.Time `json:"created_at"`
}

func NewWorkflowLog(userID uuid.UUID, workflowID, requestMethod string) *WorkflowLog {
	return &WorkflowLog{
		ID:            uuid.New(),
		UserID:        userID,
		WorkflowID:    workflowID,
		RequestMethod: requestMethod,
		Status:        ExecutionSuccess,
		CreatedAt:     time.Now(),
	}
}

func (l *WorkflowLog) Fail(status ExecutionStatus, message string) {
	l.Status = status
	l.ErrorMessage = &message
}
