package repository

import (
	"context"

	"flowgate/internal/core/ports"
	"flowgate/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type workflowRepository struct {
	db *gorm.DB
}

// NewWorkflowRepository creates a new instance of WorkflowRepository
func NewWorkflowRepository(db *gorm.DB) ports.WorkflowRepository {
	return &workflowRepository{db: db}
}

func (r *workflowRepository) Create(ctx context.Context, workflow *domain.Workflow) error {
	return r.db.WithContext(ctx).Create(workflow).Error
}

func (r *workflowRepository) Update(ctx context.Context, workflow *domain.Workflow) error {
	return r.db.WithContext(ctx).Save(workflow).Error
}

func (r *workflowRepository) Delete(ctx context.Context, userID uuid.UUID, workflowID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND workflow_id = ?", userID, workflowID).
		Delete(&domain.Workflow{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByWorkflowID is the gateway-side lookup: by external identifier only,
// not scoped to a caller.
func (r *workflowRepository) FindByWorkflowID(ctx context.Context, workflowID string) (*domain.Workflow, error) {
	var workflow domain.Workflow
	err := r.db.WithContext(ctx).
		Where("workflow_id = ?", workflowID).
		First(&workflow).Error
	if err != nil {
		return nil, err
	}
	return &workflow, nil
}

func (r *workflowRepository) FindByUserAndWorkflowID(ctx context.Context, userID uuid.UUID, workflowID string) (*domain.Workflow, error) {
	var workflow domain.Workflow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND workflow_id = ?", userID, workflowID).
		First(&workflow).Error
	if err != nil {
		return nil, err
	}
	return &workflow, nil
}

func (r *workflowRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Workflow, error) {
	var workflows []domain.Workflow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workflows).Error

	return workflows, err
}
