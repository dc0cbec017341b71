// Package client реализует HTTP-клиент дашборда коротких ссылок.
// Живет в pkg, чтобы внешние утилиты могли ходить в API без импорта internal.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout = 15 * time.Second
	maxAttempts    = 3
	initialBackoff = 500 * time.Millisecond
	headerAuth     = "Authorization"
	headerCType    = "Content-Type"
	mimeJSON       = "application/json"
)

// Link повторяет camelCase-формат API, см. internal/http/dto.
type Link struct {
	ID             string `json:"id"`
	Slug           string `json:"slug"`
	OriginalURL    string `json:"originalUrl"`
	Description    string `json:"description"`
	Clicks         int64  `json:"clicks"`
	OwnerID        string `json:"ownerId,omitempty"`
	IsPersonalized bool   `json:"isPersonalized"`
	IsDeleted      bool   `json:"isDeleted"`
	CreatedAt      string `json:"createdAt"`
}

type CreateLinkParams struct {
	Slug           string `json:"slug,omitempty"`
	OriginalURL    string `json:"originalUrl"`
	Description    string `json:"description,omitempty"`
	IsPersonalized bool   `json:"isPersonalized"`
}

// UpdateLinkParams - полный набор изменяемых полей. Сервер перезаписывает
// запись целиком, поэтому slug и originalUrl обязательны даже без изменений.
type UpdateLinkParams struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	OriginalURL string `json:"originalUrl"`
	Description string `json:"description"`
	IsDeleted   *bool  `json:"isDeleted,omitempty"`
}

type apiError struct {
	Error string `json:"error"`
}

// StatusError возвращается на любой не-2xx ответ сервера.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

type Option func(*Client)

// WithToken добавляет bearer-токен ко всем запросам.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	c := &Client{
		baseURL: parsed.String(),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// List возвращает ссылки запрошенной области видимости.
// scope: public либо personalized, trash переключает корзину.
func (c *Client) List(ctx context.Context, scope string, trash bool) ([]Link, error) {
	query := url.Values{}
	if scope != "" {
		query.Set("type", scope)
	}
	if trash {
		query.Set("trash", "true")
	}

	var links []Link
	if err := c.do(ctx, http.MethodGet, "/api/links", query, nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (c *Client) Create(ctx context.Context, params CreateLinkParams) (Link, error) {
	var link Link
	err := c.do(ctx, http.MethodPost, "/api/links", nil, params, &link)
	return link, err
}

// Update перезаписывает изменяемые поля записи. Сервер отвечает флагом
// успеха, а не записью; обновленное состояние при необходимости добирается
// через List.
func (c *Client) Update(ctx context.Context, params UpdateLinkParams) error {
	var resp struct {
		Success bool `json:"success"`
	}
	return c.do(ctx, http.MethodPut, "/api/links", nil, params, &resp)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	query := url.Values{"id": []string{id}}
	return c.do(ctx, http.MethodDelete, "/api/links", query, nil, nil)
}

func (c *Client) Restore(ctx context.Context, id string) error {
	query := url.Values{"id": []string{id}}
	return c.do(ctx, http.MethodPost, "/api/links/restore", query, nil, nil)
}

func (c *Client) CheckSlug(ctx context.Context, slug string) (bool, error) {
	query := url.Values{"slug": []string{slug}}
	var resp struct {
		Exists bool `json:"exists"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/check-slug", query, nil, &resp); err != nil {
		return false, err
	}
	return resp.Exists, nil
}

func (c *Client) SuggestSlugs(ctx context.Context, originalURL, description string) ([]string, error) {
	query := url.Values{"url": []string{originalURL}}
	if description != "" {
		query.Set("description", description)
	}
	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/suggest-slugs", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ping", nil, nil, nil)
}

// do выполняет запрос с повторами. Повторяются только транспортные ошибки и
// 5xx: клиентская ошибка не исправится от ожидания.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	backoff := initialBackoff
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
		if err != nil {
			return err
		}
		if payload != nil {
			req.Header.Set(headerCType, mimeJSON)
		}
		if c.token != "" {
			req.Header.Set(headerAuth, "Bearer "+c.token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		retry, err := c.handleResponse(resp, out)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("request failed after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) handleResponse(resp *http.Response, out any) (retry bool, err error) {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return false, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("failed to decode response: %w", err)
		}
		return false, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode}
	var parsed apiError
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil {
		statusErr.Message = parsed.Error
	}
	return resp.StatusCode >= 500, statusErr
}

// IsStatus сообщает, является ли ошибка ответом сервера с данным кодом.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
