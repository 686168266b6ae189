package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken is an upstream credential stored by a console user. The value
// is kept exactly as entered; normalization happens at call time.
type AccessToken struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"token_name"`
	Value       string    `gorm:"type:text;not null" json:"token_value"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AccessToken) TableName() string {
	return "tokens"
}

func NewAccessToken(userID uuid.UUID, name, value string) *AccessToken {
	return &AccessToken{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Value:     value,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}
