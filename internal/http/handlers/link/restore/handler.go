package restore

import (
	"context"
	"net/http"

	"shortlink/internal/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/auth"
	"shortlink/internal/http/httputils"
)

type ServiceLinks interface {
	Restore(ctx context.Context, caller models.Identity, id string) error
}

// HandlerRestoreLink обрабатывает POST /api/links/restore?id=
// Дашборд также восстанавливает через PUT с isDeleted=false; этот маршрут -
// прямой путь из корзины.
func HandlerRestoreLink(svc ServiceLinks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		caller := auth.IdentityFromContext(ctx)

		id := r.URL.Query().Get("id")
		if id == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "id is required")
			return
		}

		if err := svc.Restore(ctx, caller, id); err != nil {
			httputils.WriteDomainError(w, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.SuccessResponse{Success: true})
	}
}
