package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowgate/internal/api/dto"
	"flowgate/internal/domain"
)

func workflowFixture(t *testing.T) (WorkflowService, *fakeTokenRepo, uuid.UUID) {
	t.Helper()
	tokens := newFakeTokenRepo()
	userID := uuid.New()
	require.NoError(t, tokens.Create(context.Background(),
		domain.NewAccessToken(userID, "prod", "api sk-abc")))
	return NewWorkflowService(newFakeWorkflowRepo(), tokens), tokens, userID
}

func TestCreateWorkflow(t *testing.T) {
	svc, _, userID := workflowFixture(t)

	workflow, err := svc.Create(context.Background(), userID, dto.CreateWorkflowRequest{
		WorkflowID: "wf-1",
		Name:       "daily digest",
		Token:      "api sk-abc",
		Parameters: map[string]any{"lang": "en"},
		Method:     "POST",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.MethodPost, workflow.Method)
	assert.True(t, workflow.IsActive)
	assert.JSONEq(t, `{"lang":"en"}`, string(workflow.Parameters))
}

func TestCreateWorkflowDuplicateID(t *testing.T) {
	svc, _, userID := workflowFixture(t)

	req := dto.CreateWorkflowRequest{WorkflowID: "wf-1", Name: "first", Token: "api sk-abc"}
	_, err := svc.Create(context.Background(), userID, req)
	require.NoError(t, err)

	req.Name = "second"
	_, err = svc.Create(context.Background(), userID, req)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateWorkflowRejectsUnknownToken(t *testing.T) {
	svc, _, userID := workflowFixture(t)

	_, err := svc.Create(context.Background(), userID, dto.CreateWorkflowRequest{
		WorkflowID: "wf-1",
		Name:       "digest",
		Token:      "never-stored",
	})
	assert.ErrorIs(t, err, ErrInactiveToken)
}

func TestCreateWorkflowRejectsInactiveToken(t *testing.T) {
	tokens := newFakeTokenRepo()
	userID := uuid.New()
	stored := domain.NewAccessToken(userID, "prod", "api sk-abc")
	stored.IsActive = false
	require.NoError(t, tokens.Create(context.Background(), stored))
	svc := NewWorkflowService(newFakeWorkflowRepo(), tokens)

	_, err := svc.Create(context.Background(), userID, dto.CreateWorkflowRequest{
		WorkflowID: "wf-1",
		Name:       "digest",
		Token:      "api sk-abc",
	})
	assert.ErrorIs(t, err, ErrInactiveToken)
}

func TestUpdateWorkflowPartial(t *testing.T) {
	svc, _, userID := workflowFixture(t)

	_, err := svc.Create(context.Background(), userID, dto.CreateWorkflowRequest{
		WorkflowID: "wf-1",
		Name:       "digest",
		Token:      "api sk-abc",
	})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(context.Background(), userID, "wf-1", dto.UpdateWorkflowRequest{
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.False(t, updated.IsActive)
	assert.Equal(t, "digest", updated.Name)
	assert.Equal(t, "api sk-abc", updated.Token)
}

func TestDeleteWorkflowScopedToOwner(t *testing.T) {
	svc, _, userID := workflowFixture(t)

	_, err := svc.Create(context.Background(), userID, dto.CreateWorkflowRequest{
		WorkflowID: "wf-1",
		Name:       "digest",
		Token:      "api sk-abc",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), uuid.New(), "wf-1")
	assert.Error(t, err)

	err = svc.Delete(context.Background(), userID, "wf-1")
	assert.NoError(t, err)
}
