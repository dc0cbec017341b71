package create

import (
	"context"
	"encoding/json"
	"net/http"

	"shortlink/internal/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/auth"
	"shortlink/internal/http/httputils"
	"shortlink/internal/services/links"
)

type ServiceLinks interface {
	Create(ctx context.Context, caller models.Identity, params links.CreateParams) (models.LinkRecord, error)
}

// HandlerCreateLink обрабатывает POST /api/links
func HandlerCreateLink(svc ServiceLinks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		caller := auth.IdentityFromContext(ctx)

		var req dto.CreateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		created, err := svc.Create(ctx, caller, req.ToParams())
		if err != nil {
			httputils.WriteDomainError(w, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.DomainToResponse(created))
	}
}
