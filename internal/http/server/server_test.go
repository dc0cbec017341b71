package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shortlink/internal/auth"
	"shortlink/internal/config"
	"shortlink/internal/http/server/mocks"
	"shortlink/internal/repository/inmemory"
	"shortlink/internal/services/links"
	"shortlink/internal/services/slug"
	"shortlink/internal/services/suggest"
	"shortlink/pkg/client"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type linkPayload struct {
	ID             string `json:"id"`
	Slug           string `json:"slug"`
	OriginalURL    string `json:"originalUrl"`
	Description    string `json:"description"`
	Clicks         int64  `json:"clicks"`
	OwnerID        string `json:"ownerId"`
	IsPersonalized bool   `json:"isPersonalized"`
	IsDeleted      bool   `json:"isDeleted"`
}

type testEnv struct {
	server   *httptest.Server
	verifier *auth.JWTVerifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	verifier, err := auth.NewJWTVerifier(secret)
	require.NoError(t, err)

	log := zerolog.Nop()
	storage := inmemory.NewStorage()
	generator := slug.NewGenerator(storage)
	service := links.NewService(storage, generator, links.Config{
		OpenPublicWrites: true,
		ShortlinkHosts:   []string{"sho.rt"},
	}, &log)
	suggester := suggest.NewService("", "", &log)

	cfg := config.Config{
		ServerAddress: "localhost:0",
		BaseURL:       "http://sho.rt",
	}

	srv, err := NewServer(&log, cfg, service, suggester, verifier)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return &testEnv{server: ts, verifier: verifier}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, e.server.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// Редиректы проверяем сами по Location
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestLinkLifecycle(t *testing.T) {
	env := newTestEnv(t)

	// Создание
	resp := env.request(t, http.MethodPost, "/api/links", "", map[string]any{
		"slug":        "launch",
		"originalUrl": "https://example.com/product",
		"description": "product page",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[linkPayload](t, resp)
	assert.Equal(t, "launch", created.Slug)
	assert.Equal(t, int64(0), created.Clicks)
	require.NotEmpty(t, created.ID)

	// Повтор того же slug отклоняется
	resp = env.request(t, http.MethodPost, "/api/links", "", map[string]any{
		"slug":        "launch",
		"originalUrl": "https://other.example",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Редирект засчитывает переход
	resp = env.request(t, http.MethodGet, "/launch", "", nil)
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "https://example.com/product", resp.Header.Get("Location"))
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/links", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed := decode[[]linkPayload](t, resp)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(1), listed[0].Clicks)

	// Удаление в корзину
	resp = env.request(t, http.MethodDelete, "/api/links?id="+created.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/launch", "", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/?error=not_found", resp.Header.Get("Location"))
	resp.Body.Close()

	// Активный список пуст, корзина содержит запись
	resp = env.request(t, http.MethodGet, "/api/links", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]linkPayload](t, resp))

	resp = env.request(t, http.MethodGet, "/api/links?trash=true", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	trash := decode[[]linkPayload](t, resp)
	require.Len(t, trash, 1)
	assert.True(t, trash[0].IsDeleted)

	// Восстановление возвращает редирект к жизни со старым счетчиком
	resp = env.request(t, http.MethodPost, "/api/links/restore?id="+created.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/launch", "", nil)
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/links", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed = decode[[]linkPayload](t, resp)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(2), listed[0].Clicks)
}

func TestCreate_AutoSlug(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/api/links", "", map[string]any{
		"originalUrl": "https://example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[linkPayload](t, resp)
	assert.Len(t, created.Slug, 6)
}

func TestCreate_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "Невалидный slug",
			body: map[string]any{"slug": "has space", "originalUrl": "https://example.com"},
		},
		{
			name: "Относительный URL",
			body: map[string]any{"slug": "abc", "originalUrl": "/relative"},
		},
		{
			name: "Петля на сокращатель",
			body: map[string]any{"slug": "abc", "originalUrl": "https://sho.rt/other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.request(t, http.MethodPost, "/api/links", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestCheckSlug(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/check-slug", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/check-slug?slug=brand", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	check := decode[map[string]bool](t, resp)
	assert.False(t, check["exists"])

	resp = env.request(t, http.MethodPost, "/api/links", "", map[string]any{
		"slug":        "brand",
		"originalUrl": "https://example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/check-slug?slug=brand", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	check = decode[map[string]bool](t, resp)
	assert.True(t, check["exists"])
}

func TestPersonalizedLinks(t *testing.T) {
	env := newTestEnv(t)

	tokenA, err := env.verifier.Issue("user-a", time.Hour)
	require.NoError(t, err)
	tokenB, err := env.verifier.Issue("user-b", time.Hour)
	require.NoError(t, err)

	// Аноним не может создать персональную ссылку
	resp := env.request(t, http.MethodPost, "/api/links", "", map[string]any{
		"slug":           "mine",
		"originalUrl":    "https://example.com",
		"isPersonalized": true,
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Владелец создает
	resp = env.request(t, http.MethodPost, "/api/links", tokenA, map[string]any{
		"slug":           "mine",
		"originalUrl":    "https://example.com",
		"isPersonalized": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[linkPayload](t, resp)
	assert.Equal(t, "user-a", created.OwnerID)

	// Аноним не может запросить персональный список
	resp = env.request(t, http.MethodGet, "/api/links?type=personalized", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Владелец видит свою запись
	resp = env.request(t, http.MethodGet, "/api/links?type=personalized", tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	own := decode[[]linkPayload](t, resp)
	require.Len(t, own, 1)

	// Чужой пользователь не видит ничего и не может править
	resp = env.request(t, http.MethodGet, "/api/links?type=personalized", tokenB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]linkPayload](t, resp))

	resp = env.request(t, http.MethodDelete, "/api/links?id="+created.ID, tokenB, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Персональная запись не попадает в публичный список
	resp = env.request(t, http.MethodGet, "/api/links", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]linkPayload](t, resp))

	// Но редирект по ней работает для всех
	resp = env.request(t, http.MethodGet, "/mine", "", nil)
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	resp.Body.Close()
}

func TestInvalidToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/links", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateLink(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/api/links", "", map[string]any{
		"slug":        "before",
		"originalUrl": "https://example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[linkPayload](t, resp)

	resp = env.request(t, http.MethodPut, "/api/links", "", map[string]any{
		"id":          created.ID,
		"slug":        "after",
		"originalUrl": "https://changed.example",
		"description": "new description",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/after", "", nil)
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "https://changed.example", resp.Header.Get("Location"))
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/before", "", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSuggestSlugs(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/suggest-slugs", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Без ключа внешнего API подсказки деградируют в пустой список
	resp = env.request(t, http.MethodGet, "/api/suggest-slugs?url=https%3A%2F%2Fexample.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	suggestions := decode[map[string][]string](t, resp)
	assert.Empty(t, suggestions["suggestions"])
}

func TestQRCode(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/api/links", "", map[string]any{
		"slug":        "qrme",
		"originalUrl": "https://example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/links/qr?slug=qrme", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/links/qr?slug=missing", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/links/qr?slug=qrme&size=99999", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestPing_StorageDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockServiceLinks(ctrl)
	svc.EXPECT().PingStorage(gomock.Any()).Return(fmt.Errorf("connection refused"))

	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	verifier, err := auth.NewJWTVerifier(secret)
	require.NoError(t, err)

	log := zerolog.Nop()
	srv, err := NewServer(&log, config.Config{ServerAddress: "localhost:0"}, svc, suggest.NewService("", "", &log), verifier)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRootAndPing(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/ping", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestGoClientUpdateRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	api, err := client.New(env.server.URL)
	require.NoError(t, err)

	ctx := context.Background()
	created, err := api.Create(ctx, client.CreateLinkParams{
		Slug:        "viaclient",
		OriginalURL: "https://example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	err = api.Update(ctx, client.UpdateLinkParams{
		ID:          created.ID,
		Slug:        "viaclient2",
		OriginalURL: "https://changed.example",
		Description: "edited",
	})
	require.NoError(t, err)

	listed, err := api.List(ctx, "public", false)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "viaclient2", listed[0].Slug)
	assert.Equal(t, "https://changed.example", listed[0].OriginalURL)
	assert.Equal(t, "edited", listed[0].Description)
}

func TestMissingLinkRedirect(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, fmt.Sprintf("/%s", "nosuchslug"), "", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/?error=not_found", resp.Header.Get("Location"))
	resp.Body.Close()
}
