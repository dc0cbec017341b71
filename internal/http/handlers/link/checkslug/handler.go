package checkslug

import (
	"context"
	"net/http"

	"shortlink/internal/http/dto"
	"shortlink/internal/http/httputils"
)

type ServiceLinks interface {
	CheckSlug(ctx context.Context, slug string) (bool, error)
}

// HandlerCheckSlug обрабатывает GET /api/check-slug?slug=
// Ответ учитывает и удаленные записи: slug из корзины остается занятым.
func HandlerCheckSlug(svc ServiceLinks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		slug := r.URL.Query().Get("slug")
		if slug == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "slug parameter is required")
			return
		}

		exists, err := svc.CheckSlug(ctx, slug)
		if err != nil {
			httputils.WriteDomainError(w, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.ExistsResponse{Exists: exists})
	}
}
