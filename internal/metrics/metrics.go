package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты отправки уведомлений
const (
	NotificationSent   = "sent"
	NotificationFailed = "failed"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	OrdersApprovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_orders_approved_total",
		Help: "Total number of pending orders moved to approved.",
	})

	OrdersDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_orders_deleted_total",
		Help: "Total number of deleted orders.",
	})

	UploadsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_uploads_rejected_total",
		Help: "Total number of uploads rejected by type or size.",
	})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pedidos_notifications_total",
		Help: "Approval emails by delivery result.",
	},
		[]string{"result"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pedidos_http_requests_total",
		Help: "Handled HTTP requests.",
	},
		[]string{"method", "route", "status"},
	)
)
