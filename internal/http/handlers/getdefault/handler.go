package getdefault

import (
	"net/http"

	"shortlink/internal/http/httputils"
)

// HandlerGetDefault возвращает HTTP хендлер для обработки запросов к корневому
// пути. Сам дашборд - внешний SPA; сервер отвечает коротким баннером.
func HandlerGetDefault() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(httputils.HeaderContentType, httputils.MIMETextPlain)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("shortlink service"))
	}
}
