package models

import (
	"io"
	"time"
)

// OrderStatus - статус заказа
type OrderStatus string

// Статусы заказов
const (
	OrderStatusPending  OrderStatus = "pendiente"
	OrderStatusApproved OrderStatus = "aprobado"
)

// Order - модель заказа (pedido) с подтверждением оплаты
type Order struct {
	ID               int64       `json:"id"`
	Email            string      `json:"email"`
	Comment          string      `json:"comentario"`
	StoredFileName   string      `json:"archivo"`
	OriginalFileName string      `json:"archivoOriginal"`
	FileSizeBytes    int64       `json:"tamano"`
	CreatedAt        time.Time   `json:"fecha"`
	Status           OrderStatus `json:"estado"`
	ApprovedAt       *time.Time  `json:"aprobadoEn,omitempty"`
	SourceIP         string      `json:"ip"`
}

// IsApproved - заказ уже подтверждён
func (o Order) IsApproved() bool {
	return o.Status == OrderStatusApproved
}

// UploadFile - входящий файл из multipart формы
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadDescriptor - описание принятого и сохранённого файла
type UploadDescriptor struct {
	StoredFileName   string
	OriginalFileName string
	SizeBytes        int64
}

// CreateOrderRequest - данные для создания заказа
type CreateOrderRequest struct {
	Email    string
	Comment  string
	SourceIP string
	File     *UploadFile
}

// OrdersSummary - список заказов (новые первыми) и счётчики по статусам
type OrdersSummary struct {
	Orders   []Order
	Total    int
	Pending  int
	Approved int
}

// ApproveResult - результат подтверждения заказа
type ApproveResult struct {
	Order Order
	// AlreadyApproved - заказ был подтверждён ранее, ничего не изменилось
	AlreadyApproved bool
	// EmailSent - уведомление клиенту доставлено почтовому серверу
	EmailSent bool
}

// NotifyResult - итог отправки уведомления, ошибки транспорта сюда не пробрасываются
type NotifyResult struct {
	Sent   bool
	Reason string
}
