package suggestslugs

import (
	"context"
	"net/http"

	"shortlink/internal/http/dto"
	"shortlink/internal/http/httputils"

	"github.com/rs/zerolog"
)

type SlugSuggester interface {
	SuggestSlugs(ctx context.Context, originalURL, description string) ([]string, error)
}

// HandlerSuggestSlugs обрабатывает GET /api/suggest-slugs?url=&description=
// Подсказки рекомендательные: сбой внешнего API деградирует в пустой список,
// а не в ошибку - дашборд при этом просто не показывает подсказки.
func HandlerSuggestSlugs(svc SlugSuggester, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		originalURL := r.URL.Query().Get("url")
		if originalURL == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "url parameter is required")
			return
		}
		description := r.URL.Query().Get("description")

		suggestions, err := svc.SuggestSlugs(ctx, originalURL, description)
		if err != nil {
			log.Warn().Err(err).Msg("slug suggestion failed")
			suggestions = nil
		}
		if suggestions == nil {
			suggestions = []string{}
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.SuggestionsResponse{Suggestions: suggestions})
	}
}
