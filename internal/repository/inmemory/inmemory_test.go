package inmemory

import (
	"context"
	"sync"
	"testing"

	"shortlink/internal/domain/models"
	"shortlink/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	created, err := storage.Create(ctx, models.LinkRecord{
		Slug:        "first",
		OriginalURL: "https://example.com",
		Clicks:      42,   // должен обнулиться
		IsDeleted:   true, // должен сброситься
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(0), created.Clicks)
	assert.False(t, created.IsDeleted)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreate_SlugConflict(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	created, err := storage.Create(ctx, models.LinkRecord{Slug: "taken", OriginalURL: "https://a.example"})
	require.NoError(t, err)

	_, err = storage.Create(ctx, models.LinkRecord{Slug: "taken", OriginalURL: "https://b.example"})
	assert.ErrorIs(t, err, models.ErrConflict)

	// Удаление не освобождает slug
	require.NoError(t, storage.SetDeleted(ctx, created.ID, true))

	_, err = storage.Create(ctx, models.LinkRecord{Slug: "taken", OriginalURL: "https://c.example"})
	assert.ErrorIs(t, err, models.ErrConflict)

	exists, err := storage.SlugExists(ctx, "taken")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetBySlug_DeletedVisibility(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	created, err := storage.Create(ctx, models.LinkRecord{Slug: "ghost", OriginalURL: "https://example.com"})
	require.NoError(t, err)
	require.NoError(t, storage.SetDeleted(ctx, created.ID, true))

	_, err = storage.GetBySlug(ctx, "ghost", false)
	assert.ErrorIs(t, err, models.ErrUnfound)

	link, err := storage.GetBySlug(ctx, "ghost", true)
	require.NoError(t, err)
	assert.True(t, link.IsDeleted)
}

func TestSetDeleted_RoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	created, err := storage.Create(ctx, models.LinkRecord{
		Slug:        "keeper",
		OriginalURL: "https://example.com",
		Description: "описание живет сквозь корзину",
	})
	require.NoError(t, err)

	require.NoError(t, storage.IncrementClicks(ctx, created.ID))
	require.NoError(t, storage.SetDeleted(ctx, created.ID, true))
	require.NoError(t, storage.SetDeleted(ctx, created.ID, false))

	restored, err := storage.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.Equal(t, created.Slug, restored.Slug)
	assert.Equal(t, created.Description, restored.Description)
	assert.Equal(t, int64(1), restored.Clicks)
	assert.Equal(t, created.CreatedAt, restored.CreatedAt)
}

func TestSetDeleted_UnknownID(t *testing.T) {
	storage := NewStorage()

	err := storage.SetDeleted(context.Background(), "no-such-id", true)
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestUpdate_SlugConflict(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	_, err := storage.Create(ctx, models.LinkRecord{Slug: "one", OriginalURL: "https://a.example"})
	require.NoError(t, err)
	second, err := storage.Create(ctx, models.LinkRecord{Slug: "two", OriginalURL: "https://b.example"})
	require.NoError(t, err)

	second.Slug = "one"
	_, err = storage.Update(ctx, second)
	assert.ErrorIs(t, err, models.ErrConflict)

	// Старый slug не потерялся после неудачной попытки
	found, err := storage.GetBySlug(ctx, "two", false)
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
}

func TestList_FilterAndOrder(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	pub1, err := storage.Create(ctx, models.LinkRecord{Slug: "pub1", OriginalURL: "https://a.example"})
	require.NoError(t, err)
	pub2, err := storage.Create(ctx, models.LinkRecord{Slug: "pub2", OriginalURL: "https://b.example"})
	require.NoError(t, err)

	personal, err := storage.Create(ctx, models.LinkRecord{
		Slug:           "mine",
		OriginalURL:    "https://c.example",
		OwnerID:        "user-1",
		IsPersonalized: true,
	})
	require.NoError(t, err)

	trashed, err := storage.Create(ctx, models.LinkRecord{Slug: "gone", OriginalURL: "https://d.example"})
	require.NoError(t, err)
	require.NoError(t, storage.SetDeleted(ctx, trashed.ID, true))

	no := false
	public, err := storage.List(ctx, repository.Filter{Personalized: &no})
	require.NoError(t, err)
	require.Len(t, public, 2)
	// Новые первыми
	assert.Equal(t, []string{pub2.ID, pub1.ID}, []string{public[0].ID, public[1].ID})

	yes := true
	personalized, err := storage.List(ctx, repository.Filter{Personalized: &yes, OwnerID: "user-1"})
	require.NoError(t, err)
	require.Len(t, personalized, 1)
	assert.Equal(t, personal.ID, personalized[0].ID)

	foreign, err := storage.List(ctx, repository.Filter{Personalized: &yes, OwnerID: "user-2"})
	require.NoError(t, err)
	assert.Empty(t, foreign)

	trash, err := storage.List(ctx, repository.Filter{Personalized: &no, Deleted: true})
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, trashed.ID, trash[0].ID)
}

func TestIncrementClicks_Concurrent(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	created, err := storage.Create(ctx, models.LinkRecord{Slug: "hot", OriginalURL: "https://example.com"})
	require.NoError(t, err)

	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_ = storage.IncrementClicks(ctx, created.ID)
		}()
	}
	wg.Wait()

	link, err := storage.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(goroutines), link.Clicks)
}

func TestContextCancelled(t *testing.T) {
	storage := NewStorage()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Create(ctx, models.LinkRecord{Slug: "abc", OriginalURL: "https://example.com"})
	assert.ErrorIs(t, err, models.ErrBackend)
}
