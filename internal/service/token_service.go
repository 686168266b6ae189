package service

import (
	"context"

	"flowgate/internal/api/dto"
	"flowgate/internal/core/ports"
	"flowgate/internal/domain"

	"github.com/google/uuid"
)

type TokenService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.AccessToken, error)
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateTokenRequest) (*domain.AccessToken, error)
	Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateTokenRequest) (*domain.AccessToken, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type tokenService struct {
	tokens ports.TokenRepository
}

func NewTokenService(tokens ports.TokenRepository) TokenService {
	return &tokenService{tokens: tokens}
}

func (s *tokenService) List(ctx context.Context, userID uuid.UUID) ([]domain.AccessToken, error) {
	return s.tokens.ListByUser(ctx, userID)
}

func (s *tokenService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateTokenRequest) (*domain.AccessToken, error) {
	taken, err := s.tokens.ExistsConflict(ctx, userID, req.Name, req.Value, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	token := domain.NewAccessToken(userID, req.Name, req.Value)
	token.Description = req.Description
	if req.IsActive != nil {
		token.IsActive = *req.IsActive
	}

	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *tokenService) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateTokenRequest) (*domain.AccessToken, error) {
	token, err := s.tokens.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		token.Name = *req.Name
	}
	if req.Value != nil {
		token.Value = *req.Value
	}
	if req.Description != nil {
		token.Description = *req.Description
	}
	if req.IsActive != nil {
		token.IsActive = *req.IsActive
	}

	if req.Name != nil || req.Value != nil {
		taken, err := s.tokens.ExistsConflict(ctx, userID, token.Name, token.Value, token.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
	}

	if err := s.tokens.Update(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *tokenService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.tokens.Delete(ctx, userID, id)
}
