package httputils

import (
	"encoding/json"
	"errors"
	"net/http"

	"shortlink/internal/domain/models"
)

func WriteTextError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMETextPlain)
	w.WriteHeader(status)
	w.Write([]byte(message))
}

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: message})
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// StatusFromError отображает доменную таксономию ошибок в коды ответов.
// Все нераспознанное считается внутренним сбоем.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidData):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUnfound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteDomainError отвечает JSON-ошибкой со статусом по таксономии.
// Внутренние детали бекенда наружу не уходят.
func WriteDomainError(w http.ResponseWriter, err error) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		WriteJSONError(w, status, "internal server error")
		return
	}
	WriteJSONError(w, status, err.Error())
}
