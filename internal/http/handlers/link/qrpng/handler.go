package qrpng

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"shortlink/internal/domain/models"
	"shortlink/internal/http/httputils"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	maxSize     = 1024
)

type ServiceLinks interface {
	Get(ctx context.Context, slug string) (models.LinkRecord, error)
}

// HandlerLinkQR обрабатывает GET /api/links/qr?slug=&size=
// Кодирует короткий URL (baseURL/slug) в PNG. Переход по QR засчитается
// обычным путем через редирект, поэтому здесь счетчик не трогаем.
func HandlerLinkQR(svc ServiceLinks, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		slug := r.URL.Query().Get("slug")
		if slug == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "slug parameter is required")
			return
		}

		size := defaultSize
		if raw := r.URL.Query().Get("size"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 || parsed > maxSize {
				httputils.WriteJSONError(w, http.StatusBadRequest, "size must be between 1 and 1024")
				return
			}
			size = parsed
		}

		if _, err := svc.Get(ctx, slug); err != nil {
			httputils.WriteDomainError(w, err)
			return
		}

		shortURL := strings.TrimSuffix(baseURL, "/") + "/" + slug
		png, err := qrcode.Encode(shortURL, qrcode.Medium, size)
		if err != nil {
			httputils.WriteJSONError(w, http.StatusInternalServerError, "failed to encode QR code")
			return
		}

		w.Header().Set(httputils.HeaderContentType, httputils.MIMEImagePNG)
		w.WriteHeader(http.StatusOK)
		w.Write(png)
	}
}
