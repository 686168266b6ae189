package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// Workflow binds an externally assigned workflow identifier to the stored
// credential and default parameters used when the public endpoint is called.
// WorkflowID is unique per owning user.
type Workflow struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_workflow;not null" json:"user_id"`
	WorkflowID string    `gorm:"type:varchar(100);uniqueIndex:idx_user_workflow;index;not null" json:"workflow_id"`

	Name        string `gorm:"type:varchar(100);not null" json:"workflow_name"`
	Description string `gorm:"type:text" json:"description"`

	// Token is the upstream credential exactly as the user entered it.
	Token string `gorm:"type:text;not null" json:"token"`

	// Parameters holds the default parameter set, merged under caller
	// parameters on every invocation.
	Parameters datatypes.JSON `gorm:"type:jsonb" json:"parameters"`

	// Method is advisory only; the execute endpoint accepts both verbs.
	Method   Method `gorm:"type:varchar(10);default:'GET'" json:"method"`
	IsAsync  bool   `gorm:"default:false" json:"is_async"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewWorkflow(userID uuid.UUID, workflowID, name string) *Workflow {
	return &Workflow{
		ID:         uuid.New(),
		UserID:     userID,
		WorkflowID: workflowID,
		Name:       name,
		Method:     MethodGet,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
}
