package repository

import (
	"context"

	"shortlink/internal/domain/models"
)

// Filter ограничивает выборку List. Nil поля = без фильтра.
type Filter struct {
	Personalized *bool
	OwnerID      string
	Deleted      bool
}

//go:generate mockgen -destination=mocks/storage_mock.go -package=mocks shortlink/internal/repository Storage

// Storage - основной интерфейс хранилища ссылок. Хранилище является
// авторитетом уникальности slug: Create и Update возвращают ErrConflict
// на основе собственного unique-ограничения, а не предварительной проверки.
type (
	Storage interface {
		// Основные CRUD операции
		Create(ctx context.Context, link models.LinkRecord) (models.LinkRecord, error)
		GetByID(ctx context.Context, id string) (models.LinkRecord, error)
		GetBySlug(ctx context.Context, slug string, includeDeleted bool) (models.LinkRecord, error)
		Update(ctx context.Context, link models.LinkRecord) (models.LinkRecord, error)

		// Мягкое удаление/восстановление, идемпотентно в обе стороны
		SetDeleted(ctx context.Context, id string, deleted bool) error

		// Листинг, новые записи первыми (created_at DESC)
		List(ctx context.Context, filter Filter) ([]models.LinkRecord, error)

		// Проверка занятости slug, учитывает и удаленные записи
		SlugExists(ctx context.Context, slug string) (bool, error)

		// Атомарный серверный инкремент счетчика переходов
		IncrementClicks(ctx context.Context, id string) error

		// Управление соединением
		Ping(ctx context.Context) error
		Close() error
	}
)
