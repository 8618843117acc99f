package repository

import (
	"context"

	"github.com/poi-explorer/internal/domain"
)

// POIRepository определяет методы для работы с точками интереса.
// Проверка принадлежности POI пользователю - ответственность вызывающего
// слоя; репозиторий ограничивает по user_id только выборки GetAllByUser*.
type POIRepository interface {
	// Create создаёт POI и возвращает сгенерированный ID.
	// Значения по умолчанию: description "", category "other",
	// is_visited false, client_id NULL.
	Create(ctx context.Context, poi domain.POICreate) (int64, error)

	// GetByID возвращает POI по ID
	GetByID(ctx context.Context, id int64) (*domain.POI, error)

	// GetAllByUser возвращает все POI пользователя, новые первыми
	GetAllByUser(ctx context.Context, userID int64) ([]*domain.POI, error)

	// GetAllByUserAndCategories возвращает POI пользователя в указанных
	// категориях, новые первыми
	GetAllByUserAndCategories(ctx context.Context, userID int64, categories []string) ([]*domain.POI, error)

	// Update применяет только заданные поля patch и всегда обновляет
	// updated_at
	Update(ctx context.Context, id int64, patch domain.POIPatch) error

	// Delete удаляет POI
	Delete(ctx context.Context, id int64) error
}
