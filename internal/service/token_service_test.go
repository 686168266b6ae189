package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowgate/internal/api/dto"
)

func TestCreateTokenConflict(t *testing.T) {
	svc := NewTokenService(newFakeTokenRepo())
	userID := uuid.New()

	_, err := svc.Create(context.Background(), userID, dto.CreateTokenRequest{
		Name: "prod", Value: "sk-abc",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), userID, dto.CreateTokenRequest{
		Name: "prod", Value: "sk-other",
	})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create(context.Background(), userID, dto.CreateTokenRequest{
		Name: "staging", Value: "sk-abc",
	})
	assert.ErrorIs(t, err, ErrConflict)

	// another user may reuse the same name
	_, err = svc.Create(context.Background(), uuid.New(), dto.CreateTokenRequest{
		Name: "prod", Value: "sk-xyz",
	})
	assert.NoError(t, err)
}

func TestUpdateTokenPartial(t *testing.T) {
	svc := NewTokenService(newFakeTokenRepo())
	userID := uuid.New()

	created, err := svc.Create(context.Background(), userID, dto.CreateTokenRequest{
		Name: "prod", Value: "sk-abc", Description: "main key",
	})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(context.Background(), userID, created.ID, dto.UpdateTokenRequest{
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.False(t, updated.IsActive)
	assert.Equal(t, "prod", updated.Name)
	assert.Equal(t, "sk-abc", updated.Value)
	assert.Equal(t, "main key", updated.Description)
}

func TestUpdateTokenKeepsOwnNameWithoutConflict(t *testing.T) {
	svc := NewTokenService(newFakeTokenRepo())
	userID := uuid.New()

	created, err := svc.Create(context.Background(), userID, dto.CreateTokenRequest{
		Name: "prod", Value: "sk-abc",
	})
	require.NoError(t, err)

	// renaming value only must not trip on its own unchanged name
	value := "sk-new"
	_, err = svc.Update(context.Background(), userID, created.ID, dto.UpdateTokenRequest{
		Value: &value,
	})
	assert.NoError(t, err)
}

func TestDeleteTokenUnknown(t *testing.T) {
	svc := NewTokenService(newFakeTokenRepo())

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.Error(t, err)
}
