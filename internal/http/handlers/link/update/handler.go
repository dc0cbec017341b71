package update

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
	Update(ctx context.Context, caller models.Identity, params links.UpdateParams) (models.LinkRecord, error)
}

// HandlerUpdateLink обрабатывает PUT /api/links (id в теле запроса)
func HandlerUpdateLink(svc ServiceLinks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		caller := auth.IdentityFromContext(ctx)

		var req dto.UpdateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if _, err := svc.Update(ctx, caller, req.ToParams()); err != nil {
			httputils.WriteDomainError(w, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.SuccessResponse{Success: true})
	}
}
