package service

import (
	"context"

	"flowgate/internal/api/dto"
	"flowgate/internal/core/ports"
	"flowgate/internal/domain"

	"github.com/google/uuid"
)

type LogService interface {
	List(ctx context.Context, filter ports.LogFilter) ([]domain.WorkflowLog, int64, error)
	ListByWorkflow(ctx context.Context, userID uuid.UUID, workflowID string, page, limit int) ([]domain.WorkflowLog, int64, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.WorkflowLog, error)
	Stats(ctx context.Context, userID uuid.UUID, days int) (*domain.LogStats, error)
	Delete(ctx context.Context, userID uuid.UUID, req dto.DeleteLogsRequest) (int64, error)
}

type logService struct {
	logs      ports.LogRepository
	workflows ports.WorkflowRepository
}

func NewLogService(logs ports.LogRepository, workflows ports.WorkflowRepository) LogService {
	return &logService{logs: logs, workflows: workflows}
}

func (s *logService) List(ctx context.Context, filter ports.LogFilter) ([]domain.WorkflowLog, int64, error) {
	return s.logs.List(ctx, filter)
}

// ListByWorkflow resolves ownership first so that logs of another user's
// workflow are indistinguishable from a missing one.
func (s *logService) ListByWorkflow(ctx context.Context, userID uuid.UUID, workflowID string, page, limit int) ([]domain.WorkflowLog, int64, error) {
	if _, err := s.workflows.FindByUserAndWorkflowID(ctx, userID, workflowID); err != nil {
		return nil, 0, err
	}
	return s.logs.List(ctx, ports.LogFilter{
		UserID:     userID,
		WorkflowID: workflowID,
		Page:       page,
		Limit:      limit,
	})
}

func (s *logService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.WorkflowLog, error) {
	return s.logs.FindByID(ctx, userID, id)
}

func (s *logService) Stats(ctx context.Context, userID uuid.UUID, days int) (*domain.LogStats, error) {
	if days <= 0 {
		days = 7
	}
	return s.logs.Stats(ctx, userID, days)
}

func (s *logService) Delete(ctx context.Context, userID uuid.UUID, req dto.DeleteLogsRequest) (int64, error) {
	if len(req.IDs) > 0 {
		return s.logs.DeleteByIDs(ctx, userID, req.IDs)
	}
	if req.Days > 0 {
		return s.logs.DeleteOlderThan(ctx, userID, req.Days)
	}
	return 0, nil
}
