package service

import (
	"context"
	"encoding/json"
	"errors"

	"flowgate/internal/api/dto"
	"flowgate/internal/core/ports"
	"flowgate/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkflowService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Workflow, error)
	Get(ctx context.Context, userID uuid.UUID, workflowID string) (*domain.Workflow, error)
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateWorkflowRequest) (*domain.Workflow, error)
	Update(ctx context.Context, userID uuid.UUID, workflowID string, req dto.UpdateWorkflowRequest) (*domain.Workflow, error)
	Delete(ctx context.Context, userID uuid.UUID, workflowID string) error
}

type workflowService struct {
	workflows ports.WorkflowRepository
	tokens    ports.TokenRepository
}

func NewWorkflowService(workflows ports.WorkflowRepository, tokens ports.TokenRepository) WorkflowService {
	return &workflowService{workflows: workflows, tokens: tokens}
}

func (s *workflowService) List(ctx context.Context, userID uuid.UUID) ([]domain.Workflow, error) {
	return s.workflows.ListByUser(ctx, userID)
}

func (s *workflowService) Get(ctx context.Context, userID uuid.UUID, workflowID string) (*domain.Workflow, error) {
	return s.workflows.FindByUserAndWorkflowID(ctx, userID, workflowID)
}

func (s *workflowService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateWorkflowRequest) (*domain.Workflow, error) {
	_, err := s.workflows.FindByUserAndWorkflowID(ctx, userID, req.WorkflowID)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.checkToken(ctx, userID, req.Token); err != nil {
		return nil, err
	}

	workflow := domain.NewWorkflow(userID, req.WorkflowID, req.Name)
	workflow.Description = req.Description
	workflow.Token = req.Token
	workflow.IsAsync = req.IsAsync
	if req.Method != "" {
		workflow.Method = domain.Method(req.Method)
	}
	if req.IsActive != nil {
		workflow.IsActive = *req.IsActive
	}
	if req.Parameters != nil {
		raw, err := json.Marshal(req.Parameters)
		if err != nil {
			return nil, err
		}
		workflow.Parameters = datatypes.JSON(raw)
	}

	if err := s.workflows.Create(ctx, workflow); err != nil {
		return nil, err
	}
	return workflow, nil
}

func (s *workflowService) Update(ctx context.Context, userID uuid.UUID, workflowID string, req dto.UpdateWorkflowRequest) (*domain.Workflow, error) {
	workflow, err := s.workflows.FindByUserAndWorkflowID(ctx, userID, workflowID)
	if err != nil {
		return nil, err
	}

	if req.Token != nil {
		if err := s.checkToken(ctx, userID, *req.Token); err != nil {
			return nil, err
		}
		workflow.Token = *req.Token
	}
	if req.Name != nil {
		workflow.Name = *req.Name
	}
	if req.Description != nil {
		workflow.Description = *req.Description
	}
	if req.Method != nil {
		workflow.Method = domain.Method(*req.Method)
	}
	if req.IsAsync != nil {
		workflow.IsAsync = *req.IsAsync
	}
	if req.IsActive != nil {
		workflow.IsActive = *req.IsActive
	}
	if req.Parameters != nil {
		raw, err := json.Marshal(*req.Parameters)
		if err != nil {
			return nil, err
		}
		workflow.Parameters = datatypes.JSON(raw)
	}

	if err := s.workflows.Update(ctx, workflow); err != nil {
		return nil, err
	}
	return workflow, nil
}

func (s *workflowService) Delete(ctx context.Context, userID uuid.UUID, workflowID string) error {
	return s.workflows.Delete(ctx, userID, workflowID)
}

// checkToken requires the credential to match one of the user's active
// stored tokens before it is bound to a workflow.
func (s *workflowService) checkToken(ctx context.Context, userID uuid.UUID, value string) error {
	ok, err := s.tokens.HasActiveValue(ctx, userID, value)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInactiveToken
	}
	return nil
}
