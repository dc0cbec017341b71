package getping

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

type Service interface {
	PingStorage(ctx context.Context) error
}

func HandlerPing(svc Service, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.PingStorage(r.Context()); err != nil {
			log.Error().Err(err).Msg("Database ping failed")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
