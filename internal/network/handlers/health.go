package handlers

import (
	"net/http"
	"time"

	"github.com/denmor86/ya-pedidos/internal/models"
	"github.com/denmor86/ya-pedidos/internal/services"
)

// HealthHandler - состояние сервиса: число заказов и время работы в секундах
func HealthHandler(s services.OrdersService, startedAt time.Time) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{
			Status: "online",
			Orders: s.CountOrders(r.Context()),
			Uptime: time.Since(startedAt).Seconds(),
		})
	})
}
