package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"shortlink/internal/domain/models"
	"shortlink/internal/repository"

	"github.com/google/uuid"
)

// InmemoryStorage - потокобезопасное хранилище для тестов и backend'а
// "memory". Семантика полностью повторяет postgres-реализацию: уникальность
// slug по всем записям (включая удаленные), атомарный инкремент под мьютексом.
type InmemoryStorage struct {
	mu     sync.RWMutex
	byID   map[string]models.LinkRecord
	bySlug map[string]string // slug -> id, включая удаленные записи
}

func NewStorage() *InmemoryStorage {
	return &InmemoryStorage{
		byID:   make(map[string]models.LinkRecord),
		bySlug: make(map[string]string),
	}
}

func (m *InmemoryStorage) Create(ctx context.Context, link models.LinkRecord) (models.LinkRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.LinkRecord{}, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}
	if link.Slug == "" || link.OriginalURL == "" {
		return models.LinkRecord{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.bySlug[link.Slug]; exists {
		return models.LinkRecord{}, fmt.Errorf("%w: slug %q is taken", models.ErrConflict, link.Slug)
	}

	link.ID = uuid.NewString()
	link.Clicks = 0
	link.IsDeleted = false
	link.CreatedAt = time.Now().UTC()

	m.byID[link.ID] = link
	m.bySlug[link.Slug] = link.ID
	return link, nil
}

func (m *InmemoryStorage) GetByID(ctx context.Context, id string) (models.LinkRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.LinkRecord{}, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	link, exists := m.byID[id]
	if !exists {
		return models.LinkRecord{}, fmt.Errorf("%w: id not found", models.ErrUnfound)
	}
	return link, nil
}

func (m *InmemoryStorage) GetBySlug(ctx context.Context, slug string, includeDeleted bool) (models.LinkRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.LinkRecord{}, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}
	if slug == "" {
		return models.LinkRecord{}, models.ErrInvalidData
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.bySlug[slug]
	if !exists {
		return models.LinkRecord{}, fmt.Errorf("%w: slug not found", models.ErrUnfound)
	}

	link := m.byID[id]
	if link.IsDeleted && !includeDeleted {
		return models.LinkRecord{}, fmt.Errorf("%w: slug not found", models.ErrUnfound)
	}
	return link, nil
}

func (m *InmemoryStorage) Update(ctx context.Context, link models.LinkRecord) (models.LinkRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.LinkRecord{}, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.byID[link.ID]
	if !exists {
		return models.LinkRecord{}, fmt.Errorf("%w: id not found", models.ErrUnfound)
	}

	if link.Slug != existing.Slug {
		if _, taken := m.bySlug[link.Slug]; taken {
			return models.LinkRecord{}, fmt.Errorf("%w: slug %q is taken", models.ErrConflict, link.Slug)
		}
		delete(m.bySlug, existing.Slug)
		m.bySlug[link.Slug] = existing.ID
	}

	existing.Slug = link.Slug
	existing.OriginalURL = link.OriginalURL
	existing.Description = link.Description
	existing.IsDeleted = link.IsDeleted

	m.byID[existing.ID] = existing
	return existing, nil
}

func (m *InmemoryStorage) SetDeleted(ctx context.Context, id string, deleted bool) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	link, exists := m.byID[id]
	if !exists {
		return fmt.Errorf("%w: id not found", models.ErrUnfound)
	}

	link.IsDeleted = deleted
	m.byID[id] = link
	return nil
}

func (m *InmemoryStorage) List(ctx context.Context, filter repository.Filter) ([]models.LinkRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var links []models.LinkRecord
	for _, link := range m.byID {
		if link.IsDeleted != filter.Deleted {
			continue
		}
		if filter.Personalized != nil && link.IsPersonalized != *filter.Personalized {
			continue
		}
		if filter.OwnerID != "" && link.OwnerID != filter.OwnerID {
			continue
		}
		links = append(links, link)
	}

	// Новые записи первыми, id как стабильный tie-break
	sort.Slice(links, func(i, j int) bool {
		if !links[i].CreatedAt.Equal(links[j].CreatedAt) {
			return links[i].CreatedAt.After(links[j].CreatedAt)
		}
		return links[i].ID < links[j].ID
	})

	return links, nil
}

func (m *InmemoryStorage) SlugExists(ctx context.Context, slug string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.bySlug[slug]
	return exists, nil
}

func (m *InmemoryStorage) IncrementClicks(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	link, exists := m.byID[id]
	if !exists {
		return fmt.Errorf("%w: id not found", models.ErrUnfound)
	}

	link.Clicks++
	m.byID[id] = link
	return nil
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *InmemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.byID = make(map[string]models.LinkRecord)
	m.bySlug = make(map[string]string)
	return nil
}
