package repository

import (
	"context"

	"flowgate/internal/core/ports"
	"flowgate/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new instance of TokenRepository
func NewTokenRepository(db *gorm.DB) ports.TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *domain.AccessToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) Update(ctx context.Context, token *domain.AccessToken) error {
	return r.db.WithContext(ctx).Save(token).Error
}

func (r *tokenRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.AccessToken{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tokenRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.AccessToken, error) {
	var token domain.AccessToken
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AccessToken, error) {
	var tokens []domain.AccessToken
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tokens).Error

	return tokens, err
}

func (r *tokenRepository) ExistsConflict(ctx context.Context, userID uuid.UUID, name, value string, exclude uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.AccessToken{}).
		Where("user_id = ? AND (name = ? OR value = ?)", userID, name, value)
	if exclude != uuid.Nil {
		query = query.Where("id != ?", exclude)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tokenRepository) HasActiveValue(ctx context.Context, userID uuid.UUID, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.AccessToken{}).
		Where("user_id = ? AND value = ? AND is_active = true", userID, value).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
