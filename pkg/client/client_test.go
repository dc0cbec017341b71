package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{
			name:    "Корректный адрес",
			baseURL: "http://localhost:8080",
		},
		{
			name:    "Пустой адрес",
			baseURL: "",
			wantErr: true,
		},
		{
			name:    "Без схемы",
			baseURL: "localhost:8080",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.baseURL)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRetryOn5xx(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Первые две попытки падают, третья отвечает
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Link{{Slug: "abc", OriginalURL: "https://example.com"}})
	}))
	defer ts.Close()

	api, err := New(ts.URL)
	require.NoError(t, err)

	links, err := api.List(context.Background(), "public", false)

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "abc", links[0].Slug)
	assert.Equal(t, int32(3), calls.Load())
}

func TestNoRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "slug already exists"})
	}))
	defer ts.Close()

	api, err := New(ts.URL)
	require.NoError(t, err)

	_, err = api.Create(context.Background(), CreateLinkParams{Slug: "taken", OriginalURL: "https://example.com"})

	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusConflict))
	assert.Contains(t, err.Error(), "slug already exists")
	assert.Equal(t, int32(1), calls.Load(), "клиентская ошибка не должна ретраиться")
}

func TestExhaustedRetries(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	api, err := New(ts.URL)
	require.NoError(t, err)

	err = api.Ping(context.Background())

	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
	assert.Equal(t, int32(maxAttempts), calls.Load())
}

func TestUpdate(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer ts.Close()

	api, err := New(ts.URL)
	require.NoError(t, err)

	err = api.Update(context.Background(), UpdateLinkParams{
		ID:          "id-1",
		Slug:        "after",
		OriginalURL: "https://changed.example",
		Description: "new description",
	})

	require.NoError(t, err)
	// Перезапись полная: slug и originalUrl уходят на сервер всегда
	assert.Equal(t, "id-1", gotBody["id"])
	assert.Equal(t, "after", gotBody["slug"])
	assert.Equal(t, "https://changed.example", gotBody["originalUrl"])
	assert.Equal(t, "new description", gotBody["description"])
	assert.NotContains(t, gotBody, "isDeleted")
}

func TestUpdate_ServerRejects(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "link not found"})
	}))
	defer ts.Close()

	api, err := New(ts.URL)
	require.NoError(t, err)

	err = api.Update(context.Background(), UpdateLinkParams{
		ID:          "no-such-id",
		Slug:        "abc",
		OriginalURL: "https://example.com",
	})

	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
}

func TestTokenHeader(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"exists": false})
	}))
	defer ts.Close()

	api, err := New(ts.URL, WithToken("my-token"))
	require.NoError(t, err)

	exists, err := api.CheckSlug(context.Background(), "abc")

	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, "Bearer my-token", gotAuth)
}

func TestContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	api, err := New(ts.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = api.Ping(ctx)
	require.Error(t, err)
}
