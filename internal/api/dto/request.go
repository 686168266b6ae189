package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateTokenRequest struct {
	Name        string `json:"token_name" binding:"required"`
	Value       string `json:"token_value" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateTokenRequest carries a partial update; nil fields are left as-is.
type UpdateTokenRequest struct {
	Name        *string `json:"token_name"`
	Value       *string `json:"token_value"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CreateWorkflowRequest struct {
	WorkflowID  string         `json:"workflow_id" binding:"required"`
	Name        string         `json:"workflow_name" binding:"required"`
	Description string         `json:"description"`
	Token       string         `json:"token" binding:"required"`
	Parameters  map[string]any `json:"parameters"`
	Method      string         `json:"method" binding:"omitempty,oneof=GET POST"`
	IsAsync     bool           `json:"is_async"`
	IsActive    *bool          `json:"is_active"`
}

// UpdateWorkflowRequest carries a partial update; nil fields are left as-is.
type UpdateWorkflowRequest struct {
	Name        *string         `json:"workflow_name"`
	Description *string         `json:"description"`
	Token       *string         `json:"token"`
	Parameters  *map[string]any `json:"parameters"`
	Method      *string         `json:"method" binding:"omitempty,oneof=GET POST"`
	IsAsync     *bool           `json:"is_async"`
	IsActive    *bool           `json:"is_active"`
}

// DeleteLogsRequest deletes either an explicit id list or everything older
// than the given number of days.
type DeleteLogsRequest struct {
	IDs  []uuid.UUID `json:"ids"`
	Days int         `json:"days"`
}
