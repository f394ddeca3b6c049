package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/denmor86/ya-pedidos/internal/logger"
	"github.com/denmor86/ya-pedidos/internal/models"
)

// Recover - перехватывает панику обработчика и отвечает 500 в JSON.
// Процесс продолжает обслуживать остальные запросы.
func Recover(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.Error("Panic in HTTP handler:", rec, r.Method, r.URL.Path, string(debug.Stack()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: true, Message: "Error interno del servidor"})
		}()

		h.ServeHTTP(w, r)
	})
}
