package models

import "time"

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// CreateOrderResponse - ответ POST /pedido
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Order   Order  `json:"pedido"`
}

// OrderResponse - ответ GET /pedido/{id}
type OrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"pedido"`
}

// OrdersResponse - ответ GET /pedidos
type OrdersResponse struct {
	Success  bool    `json:"success"`
	Total    int     `json:"total"`
	Pending  int     `json:"pendientes"`
	Approved int     `json:"aprobados"`
	Orders   []Order `json:"pedidos"`
}

// ApprovedOrder - краткое описание подтверждённого заказа
type ApprovedOrder struct {
	ID         int64       `json:"id"`
	Email      string      `json:"email"`
	Status     OrderStatus `json:"estado"`
	ApprovedAt *time.Time  `json:"aprobadoEn"`
	EmailSent  bool        `json:"emailEnviado"`
}

// ApproveResponse - ответ POST /aprobar/{id}
type ApproveResponse struct {
	Success         bool          `json:"success"`
	Message         string        `json:"message"`
	AlreadyApproved bool          `json:"yaAprobado"`
	Order           ApprovedOrder `json:"pedido"`
}

// MessageResponse - ответ без данных
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse - ответ GET /health
type HealthResponse struct {
	Status string  `json:"status"`
	Orders int     `json:"pedidos"`
	Uptime float64 `json:"uptime"`
}
