package list

import (
	"context"
	"net/http"
	"strconv"

	"shortlink/internal/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/auth"
	"shortlink/internal/http/httputils"
)

type ServiceLinks interface {
	List(ctx context.Context, caller models.Identity, personalized, trash bool) ([]models.LinkRecord, error)
}

// HandlerListLinks обрабатывает GET /api/links?type=public|personalized&trash=bool
func HandlerListLinks(svc ServiceLinks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		caller := auth.IdentityFromContext(ctx)

		linkType := r.URL.Query().Get("type")
		if linkType == "" {
			linkType = "public"
		}
		if linkType != "public" && linkType != "personalized" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "type must be public or personalized")
			return
		}

		trash, _ := strconv.ParseBool(r.URL.Query().Get("trash"))

		records, err := svc.List(ctx, caller, linkType == "personalized", trash)
		if err != nil {
			httputils.WriteDomainError(w, err)
			return
		}

		// Пустой список сериализуем как [], а не null
		responses := dto.DomainsToResponses(records)
		if responses == nil {
			responses = []dto.LinkResponse{}
		}
		httputils.WriteJSONResponse(w, http.StatusOK, responses)
	}
}
