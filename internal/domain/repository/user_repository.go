package repository

import (
	"context"

	"github.com/poi-explorer/internal/domain"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Create создаёт пользователя и возвращает сгенерированный ID
	Create(ctx context.Context, user domain.UserCreate) (int64, error)

	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername возвращает пользователя по имени
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update применяет только заданные поля patch
	Update(ctx context.Context, id int64, patch domain.UserPatch) error
}
