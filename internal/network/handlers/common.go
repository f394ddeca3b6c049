package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/denmor86/ya-pedidos/internal/logger"
	"github.com/denmor86/ya-pedidos/internal/models"
	"github.com/denmor86/ya-pedidos/internal/services"
	"github.com/denmor86/ya-pedidos/internal/validators"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Тексты ответов
const (
	MsgMissingData   = "Faltan datos"
	MsgInvalidEmail  = "Email inválido"
	MsgFileTooLarge  = "Archivo demasiado grande"
	MsgFileType      = "Solo imágenes o PDFs"
	MsgInvalidData   = "Datos inválidos"
	MsgNotFound      = "No encontrado"
	MsgRouteNotFound = "Ruta no encontrada"
	MsgInternalError = "Error interno del servidor"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: true, Message: message})
}

// errorStatus - код и текст ответа для ошибки сервиса.
// Подробности неожиданных ошибок клиенту не отдаются.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrEmailRequired), errors.Is(err, services.ErrFileRequired):
		return http.StatusBadRequest, MsgMissingData
	case errors.Is(err, services.ErrEmailInvalid):
		return http.StatusBadRequest, MsgInvalidEmail
	case errors.Is(err, validators.ErrUploadTooLarge):
		return http.StatusBadRequest, MsgFileTooLarge
	case errors.Is(err, validators.ErrUploadType):
		return http.StatusBadRequest, MsgFileType
	case errors.Is(err, services.ErrValidation), errors.Is(err, validators.ErrUploadRejected):
		return http.StatusBadRequest, MsgInvalidData
	case errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound, MsgNotFound
	default:
		return http.StatusInternalServerError, MsgInternalError
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	status, message := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed:", zap.Error(err))
	} else {
		logger.Warn("Request rejected:", err)
	}
	writeError(w, status, message)
}

// orderID - числовой идентификатор из URL. Нечисловой id считается несуществующим.
func orderID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// NotFoundHandler - ответ на неизвестный маршрут
func NotFoundHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{
			Error:   true,
			Message: MsgRouteNotFound,
			Path:    r.URL.Path,
		})
	})
}

// StaticPageHandler - отдаёт HTML страницу из каталога public
func StaticPageHandler(dir string, page string) http.HandlerFunc {
	path := filepath.Join(dir, page)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			NotFoundHandler()(w, r)
			return
		}
		http.ServeFile(w, r, path)
	})
}
