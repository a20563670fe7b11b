package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/location-loader/internal/domain"
)

// LocationRepository - хранилище локаций. Владеет подключением;
// загрузка получает от него одну транзакционную партию на прогон.
type LocationRepository interface {
	// Begin открывает новую партию записи
	Begin(ctx context.Context) (LocationBatch, error)

	// GetByID возвращает сохранённую локацию
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LocationRecord, error)
}

// LocationBatch - одна транзакция загрузки.
// Close обязателен: без Finalize он откатывает всё, после Finalize ничего не делает.
type LocationBatch interface {
	// Insert записывает одну локацию. Ошибка не ломает партию:
	// последующие Insert и Finalize продолжают работать.
	Insert(ctx context.Context, record *domain.LocationRecord) error

	// Finalize фиксирует все успешные Insert
	Finalize() error

	// Close освобождает транзакцию
	Close() error
}
