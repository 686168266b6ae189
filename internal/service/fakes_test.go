package service

import (
	"context"

	"flowgate/internal/core/ports"
	"flowgate/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeTokenRepo struct {
	tokens map[uuid.UUID]*domain.AccessToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[uuid.UUID]*domain.AccessToken{}}
}

func (r *fakeTokenRepo) Create(_ context.Context, token *domain.AccessToken) error {
	r.tokens[token.ID] = token
	return nil
}

func (r *fakeTokenRepo) Update(_ context.Context, token *domain.AccessToken) error {
	if _, ok := r.tokens[token.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.tokens[token.ID] = token
	return nil
}

func (r *fakeTokenRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	if t, ok := r.tokens[id]; ok && t.UserID == userID {
		delete(r.tokens, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeTokenRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*domain.AccessToken, error) {
	if t, ok := r.tokens[id]; ok && t.UserID == userID {
		copied := *t
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTokenRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.AccessToken, error) {
	var out []domain.AccessToken
	for _, t := range r.tokens {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTokenRepo) ExistsConflict(_ context.Context, userID uuid.UUID, name, value string, exclude uuid.UUID) (bool, error) {
	for _, t := range r.tokens {
		if t.UserID == userID && t.ID != exclude && (t.Name == name || t.Value == value) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTokenRepo) HasActiveValue(_ context.Context, userID uuid.UUID, value string) (bool, error) {
	for _, t := range r.tokens {
		if t.UserID == userID && t.Value == value && t.IsActive {
			return true, nil
		}
	}
	return false, nil
}

type fakeWorkflowRepo struct {
	workflows map[string]*domain.Workflow
}

func newFakeWorkflowRepo() *fakeWorkflowRepo {
	return &fakeWorkflowRepo{workflows: map[string]*domain.Workflow{}}
}

func (r *fakeWorkflowRepo) key(userID uuid.UUID, workflowID string) string {
	return userID.String() + "/" + workflowID
}

func (r *fakeWorkflowRepo) Create(_ context.Context, w *domain.Workflow) error {
	r.workflows[r.key(w.UserID, w.WorkflowID)] = w
	return nil
}

func (r *fakeWorkflowRepo) Update(_ context.Context, w *domain.Workflow) error {
	r.workflows[r.key(w.UserID, w.WorkflowID)] = w
	return nil
}

func (r *fakeWorkflowRepo) Delete(_ context.Context, userID uuid.UUID, workflowID string) error {
	k := r.key(userID, workflowID)
	if _, ok := r.workflows[k]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.workflows, k)
	return nil
}

func (r *fakeWorkflowRepo) FindByWorkflowID(_ context.Context, workflowID string) (*domain.Workflow, error) {
	for _, w := range r.workflows {
		if w.WorkflowID == workflowID {
			return w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeWorkflowRepo) FindByUserAndWorkflowID(_ context.Context, userID uuid.UUID, workflowID string) (*domain.Workflow, error) {
	if w, ok := r.workflows[r.key(userID, workflowID)]; ok {
		copied := *w
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeWorkflowRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Workflow, error) {
	var out []domain.Workflow
	for _, w := range r.workflows {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

type fakeLogRepo struct {
	deletedIDs  []uuid.UUID
	deletedDays int
}

func (r *fakeLogRepo) Create(context.Context, *domain.WorkflowLog) error { return nil }

func (r *fakeLogRepo) List(context.Context, ports.LogFilter) ([]domain.WorkflowLog, int64, error) {
	return nil, 0, nil
}

func (r *fakeLogRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*domain.WorkflowLog, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLogRepo) DeleteByIDs(_ context.Context, _ uuid.UUID, ids []uuid.UUID) (int64, error) {
	r.deletedIDs = ids
	return int64(len(ids)), nil
}

func (r *fakeLogRepo) DeleteOlderThan(_ context.Context, _ uuid.UUID, days int) (int64, error) {
	r.deletedDays = days
	return 4, nil
}

func (r *fakeLogRepo) Stats(context.Context, uuid.UUID, int) (*domain.LogStats, error) {
	return &domain.LogStats{}, nil
}
