package remove

import (
	"context"
	"net/http"

	"shortlink/internal/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/auth"
	"shortlink/internal/http/httputils"
)

type ServiceLinks interface {
	SoftDelete(ctx context.Context, caller models.Identity, id string) error
}

// HandlerDeleteLink обрабатывает DELETE /api/links?id=
// Удаление мягкое: запись уходит в корзину и восстановима.
func HandlerDeleteLink(svc ServiceLinks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		caller := auth.IdentityFromContext(ctx)

		id := r.URL.Query().Get("id")
		if id == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "id is required")
			return
		}

		if err := svc.SoftDelete(ctx, caller, id); err != nil {
			httputils.WriteDomainError(w, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.SuccessResponse{Success: true})
	}
}
