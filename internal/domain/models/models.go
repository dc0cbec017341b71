package models

import (
	"errors"
	"time"
)

type (
	// Identity описывает вызывающего. Zero value = анонимный caller.
	Identity struct {
		UserID string
	}

	LinkRecord struct {
		ID             string // Уникальный идентификатор (uuid)
		Slug           string // Короткий код, глобально уникален (включая удаленные записи)
		OriginalURL    string // Оригинальный URL в изначальном виде
		Description    string
		Clicks         int64  // растет только через атомарный инкремент в хранилище
		OwnerID        string // Непустой тогда и только тогда, когда IsPersonalized
		IsPersonalized bool   // false = публичная ссылка, true = видна только владельцу
		IsDeleted      bool   // soft delete, запись остается в корзине
		CreatedAt      time.Time
	}
)

func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}

var (
	ErrInvalidData  = errors.New("invalid input data")
	ErrConflict     = errors.New("slug already exists")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("operation not permitted")
	ErrUnfound      = errors.New("link not found")
	ErrBackend      = errors.New("storage unavailable")
)
