package handlers

import (
	"errors"
	"net"
	"net/http"

	"github.com/denmor86/ya-pedidos/internal/logger"
	"github.com/denmor86/ya-pedidos/internal/models"
	"github.com/denmor86/ya-pedidos/internal/services"
	"github.com/denmor86/ya-pedidos/internal/validators"
	"go.uber.org/zap"
)

const (
	// запас на поля формы и заголовки частей multipart
	multipartOverhead = 1 << 20
	// файлы больше этого размера при разборе формы уходят во временные файлы
	multipartMemory = 1 << 20

	fieldEmail   = "email"
	fieldComment = "comment"
	fieldFile    = "comprobante"
)

// CreateOrderHandler - приём заказа с файлом подтверждения оплаты
func CreateOrderHandler(s services.OrdersService, maxSize int64) http.HandlerFunc {
	if maxSize <= 0 {
		maxSize = validators.MaxUploadSize
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				logger.Warn("Request body too large:", maxErr.Limit)
				writeError(w, http.StatusBadRequest, MsgFileTooLarge)
				return
			}
			logger.Warn("Invalid multipart form:", err)
			writeError(w, http.StatusBadRequest, MsgMissingData)
			return
		}
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				logger.Error("Failed to remove multipart temp files:", zap.Error(err))
			}
		}()

		req := models.CreateOrderRequest{
			Email:    r.FormValue(fieldEmail),
			Comment:  r.FormValue(fieldComment),
			SourceIP: clientIP(r),
		}

		file, header, err := r.FormFile(fieldFile)
		switch {
		case err == nil:
			defer file.Close()
			req.File = &models.UploadFile{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Content:     file,
			}
		case errors.Is(err, http.ErrMissingFile):
			// проверку наличия файла делает сервис
		default:
			logger.Warn("Failed to read uploaded file:", err)
			writeError(w, http.StatusBadRequest, MsgMissingData)
			return
		}

		order, err := s.CreateOrder(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.CreateOrderResponse{
			Success: true,
			Message: "Pedido recibido",
			ID:      order.ID,
			Order:   *order,
		})
	})
}

// ListOrdersHandler - все заказы, новые первыми, со счётчиками по статусам
func ListOrdersHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := s.ListOrders(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		orders := summary.Orders
		if orders == nil {
			orders = []models.Order{}
		}
		writeJSON(w, http.StatusOK, models.OrdersResponse{
			Success:  true,
			Total:    summary.Total,
			Pending:  summary.Pending,
			Approved: summary.Approved,
			Orders:   orders,
		})
	})
}

// GetOrderHandler - заказ по идентификатору
func GetOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderID(r)
		if !ok {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}
		order, err := s.GetOrder(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.OrderResponse{Success: true, Order: *order})
	})
}

// ApproveOrderHandler - подтверждение оплаты заказа
func ApproveOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderID(r)
		if !ok {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}
		result, err := s.ApproveOrder(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		message := "Pedido aprobado"
		if result.AlreadyApproved {
			message = "El pedido ya estaba aprobado"
		}
		writeJSON(w, http.StatusOK, models.ApproveResponse{
			Success:         true,
			Message:         message,
			AlreadyApproved: result.AlreadyApproved,
			Order: models.ApprovedOrder{
				ID:         result.Order.ID,
				Email:      result.Order.Email,
				Status:     result.Order.Status,
				ApprovedAt: result.Order.ApprovedAt,
				EmailSent:  result.EmailSent,
			},
		})
	})
}

// DeleteOrderHandler - удаление заказа вместе с файлом
func DeleteOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderID(r)
		if !ok {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}
		if err := s.DeleteOrder(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Pedido eliminado"})
	})
}

// clientIP - адрес клиента без порта. За прокси RemoteAddr уже заменён middleware.RealIP.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
