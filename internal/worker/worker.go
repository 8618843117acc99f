package worker

import (
	"context"
)

// Worker интерфейс для фоновых обработчиков стримов
type Worker interface {
	// Start запускает воркер, блокирует до остановки
	Start(ctx context.Context) error

	// Stop останавливает воркер
	Stop() error

	// Name возвращает имя воркера
	Name() string
}
