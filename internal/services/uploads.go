package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/denmor86/ya-pedidos/internal/logger"
	"github.com/denmor86/ya-pedidos/internal/metrics"
	"github.com/denmor86/ya-pedidos/internal/models"
	"github.com/denmor86/ya-pedidos/internal/storage"
	"github.com/denmor86/ya-pedidos/internal/validators"
)

type Uploads struct {
	Files   storage.FilesStorage
	MaxSize int64
	Now     func() time.Time
}

// Создание сервиса
func NewUploads(files storage.FilesStorage, maxSize int64) *Uploads {
	if maxSize <= 0 {
		maxSize = validators.MaxUploadSize
	}
	return &Uploads{Files: files, MaxSize: maxSize, Now: time.Now}
}

// Accept - проверяет файл и сохраняет его под уникальным именем.
// При отказе на диск ничего не пишется.
func (s *Uploads) Accept(ctx context.Context, file *models.UploadFile) (*models.UploadDescriptor, error) {
	if file == nil || file.Content == nil {
		return nil, ErrFileRequired
	}
	if err := validators.CheckUpload(file.Name, file.ContentType, file.Size, s.MaxSize); err != nil {
		metrics.UploadsRejectedTotal.Inc()
		logger.Warn("Upload rejected:", err)
		return nil, err
	}

	name := validators.NewStoredName(file.Name, s.Now())
	written, err := s.Files.Save(ctx, name, file.Content, s.MaxSize)
	if err != nil {
		// заявленный размер мог не совпасть с реальным
		if errors.Is(err, storage.ErrFileTooLarge) {
			metrics.UploadsRejectedTotal.Inc()
			logger.Warn("Upload rejected:", err)
			return nil, fmt.Errorf("%w: %w", validators.ErrUploadTooLarge, err)
		}
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	logger.Debug("Upload stored:", name, written)
	return &models.UploadDescriptor{
		StoredFileName:   name,
		OriginalFileName: filepath.Base(file.Name),
		SizeBytes:        written,
	}, nil
}

// Discard - удаляет сохранённый файл, отсутствие файла не ошибка
func (s *Uploads) Discard(ctx context.Context, storedFileName string) error {
	return s.Files.Remove(ctx, storedFileName)
}
