package dto

import (
	"time"

	"shortlink/internal/domain/models"
	"shortlink/internal/services/links"
)

// Внешнее представление camelCase, хранилище snake_case. Перевод между ними
// живет только здесь - обработчики и сервисы видят доменные типы.

// Request
type (
	CreateLinkRequest struct {
		Slug           string `json:"slug"`
		OriginalURL    string `json:"originalUrl"`
		Description    string `json:"description"`
		IsPersonalized bool   `json:"isPersonalized"`
	}

	UpdateLinkRequest struct {
		ID          string `json:"id"`
		Slug        string `json:"slug"`
		OriginalURL string `json:"originalUrl"`
		Description string `json:"description"`
		IsDeleted   *bool  `json:"isDeleted,omitempty"`
	}
)

// Response
type (
	LinkResponse struct {
		ID             string    `json:"id"`
		Slug           string    `json:"slug"`
		OriginalURL    string    `json:"originalUrl"`
		Description    string    `json:"description"`
		Clicks         int64     `json:"clicks"`
		OwnerID        string    `json:"ownerId,omitempty"`
		IsPersonalized bool      `json:"isPersonalized"`
		IsDeleted      bool      `json:"isDeleted"`
		CreatedAt      time.Time `json:"createdAt"`
	}

	SuccessResponse struct {
		Success bool `json:"success"`
	}

	ExistsResponse struct {
		Exists bool `json:"exists"`
	}

	SuggestionsResponse struct {
		Suggestions []string `json:"suggestions"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}
)

// Request → Domain
func (r CreateLinkRequest) ToParams() links.CreateParams {
	return links.CreateParams{
		Slug:           r.Slug,
		OriginalURL:    r.OriginalURL,
		Description:    r.Description,
		IsPersonalized: r.IsPersonalized,
	}
}

func (r UpdateLinkRequest) ToParams() links.UpdateParams {
	return links.UpdateParams{
		ID:          r.ID,
		Slug:        r.Slug,
		OriginalURL: r.OriginalURL,
		Description: r.Description,
		IsDeleted:   r.IsDeleted,
	}
}

// Domain → Response
func DomainToResponse(link models.LinkRecord) LinkResponse {
	return LinkResponse{
		ID:             link.ID,
		Slug:           link.Slug,
		OriginalURL:    link.OriginalURL,
		Description:    link.Description,
		Clicks:         link.Clicks,
		OwnerID:        link.OwnerID,
		IsPersonalized: link.IsPersonalized,
		IsDeleted:      link.IsDeleted,
		CreatedAt:      link.CreatedAt,
	}
}

func DomainsToResponses(records []models.LinkRecord) []LinkResponse {
	responses := make([]LinkResponse, len(records))
	for i, link := range records {
		responses[i] = DomainToResponse(link)
	}
	return responses
}
