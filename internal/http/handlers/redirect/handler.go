package redirect

import (
	"context"
	"net/http"

	"shortlink/internal/domain/models"

	"github.com/gorilla/mux"
)

// Неизвестный или удаленный slug уводит на корень с маркером ошибки,
// чтобы пользователь остался внутри продукта, а не на голой 404.
const notFoundLocation = "/?error=not_found"

type ServiceLinks interface {
	Resolve(ctx context.Context, slug string) (models.LinkRecord, error)
}

// HandlerRedirect обрабатывает GET /{slug}
// Пустой slug сюда не попадает: корень уходит в собственный маршрут.
// Инкремент счетчика выполняется внутри Resolve до ответа и не гейтит
// редирект: при сбое телеметрии пользователь все равно уходит по адресу.
func HandlerRedirect(svc ServiceLinks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		slug := mux.Vars(r)["slug"]
		link, err := svc.Resolve(ctx, slug)
		if err != nil {
			http.Redirect(w, r, notFoundLocation, http.StatusFound)
			return
		}

		http.Redirect(w, r, link.OriginalURL, http.StatusTemporaryRedirect)
	}
}
