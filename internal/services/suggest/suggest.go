package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shortlink/internal/domain/models"

	"github.com/rs/zerolog"
)

const requestTimeout = 10 * time.Second

// Service - клиент внешнего генеративного API, предлагающего читаемые slug'и
// по адресу назначения и описанию. Подсказки сугубо рекомендательные: принятый
// slug все равно проходит обычную проверку уникальности при создании.
type Service struct {
	apiURL string
	apiKey string
	client *http.Client
	log    *zerolog.Logger
}

func NewService(apiURL, apiKey string, log *zerolog.Logger) *Service {
	return &Service{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: requestTimeout},
		log:    log,
	}
}

type (
	generateRequest struct {
		Contents         []content        `json:"contents"`
		GenerationConfig generationConfig `json:"generationConfig"`
	}

	content struct {
		Parts []part `json:"parts"`
	}

	part struct {
		Text string `json:"text"`
	}

	generationConfig struct {
		ResponseMIMEType string `json:"responseMimeType"`
	}

	generateResponse struct {
		Candidates []struct {
			Content content `json:"content"`
		} `json:"candidates"`
	}

	suggestionPayload struct {
		Suggestions []string `json:"suggestions"`
	}
)

// SuggestSlugs спрашивает у внешнего API пять коротких URL-safe кодов.
// Без ключа API тихо отдает пустой список - функция опциональна.
func (s *Service) SuggestSlugs(ctx context.Context, originalURL, description string) ([]string, error) {
	if s.apiKey == "" || s.apiURL == "" {
		return nil, nil
	}

	prompt := fmt.Sprintf(
		"I am creating a short link for the following URL: %q.", originalURL)
	if description != "" {
		prompt += fmt.Sprintf(" Description of the content: %q.", description)
	}
	prompt += ` Suggest 5 creative, short, and memorable slugs (URL paths) for this link.
Slugs must be URL-safe (letters, digits, hyphens, underscores), ideally under 15 characters,
and relevant to the content. Return JSON: {"suggestions": ["..."]}`

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: suggestion API unreachable: %v", models.ErrBackend, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: suggestion API returned %d", models.ErrBackend, resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, nil
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(decoded.Candidates[0].Content.Parts[0].Text), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}

	// Отбрасываем то, что не пройдет валидацию slug'а при создании
	valid := payload.Suggestions[:0]
	for _, suggestion := range payload.Suggestions {
		if models.ValidateSlug(suggestion) == nil {
			valid = append(valid, suggestion)
		}
	}

	return valid, nil
}
