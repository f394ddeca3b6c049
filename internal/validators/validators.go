package validators

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"mime"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// MaxUploadSize - ограничение размера файла по умолчанию (10 MiB)
const MaxUploadSize int64 = 10 << 20

var (
	ErrUploadRejected = errors.New("upload rejected")
	ErrUploadTooLarge = fmt.Errorf("%w: file too large", ErrUploadRejected)
	ErrUploadType     = fmt.Errorf("%w: only images or PDF files are allowed", ErrUploadRejected)
)

// допустимые расширения и подтипы content-type
var allowedTypes = map[string]struct{}{
	"jpeg": {},
	"jpg":  {},
	"png":  {},
	"gif":  {},
	"pdf":  {},
	"webp": {},
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckEmail проверяет адрес на форму local@domain.tld
func CheckEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// CheckUpload проверяет размер, расширение и content-type файла.
// Ни расширению, ни content-type по отдельности не доверяем.
func CheckUpload(name string, contentType string, size int64, limit int64) error {
	if limit <= 0 {
		limit = MaxUploadSize
	}
	if size > limit {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrUploadTooLarge, size, limit)
	}
	if !allowedExtension(name) || !allowedContentType(contentType) {
		return fmt.Errorf("%w: name %q, content-type %q", ErrUploadType, name, contentType)
	}
	return nil
}

func allowedExtension(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	_, ok := allowedTypes[ext]
	return ok
}

func allowedContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	_, subtype, found := strings.Cut(mediaType, "/")
	if !found {
		return false
	}
	_, ok := allowedTypes[subtype]
	return ok
}

// NewStoredName формирует имя для сохранения: <unixnano>-<случайное число><расширение>.
// Повторных попыток при коллизии нет.
func NewStoredName(original string, now time.Time) string {
	ext := filepath.Ext(filepath.Base(original))
	return fmt.Sprintf("%d-%d%s", now.UnixNano(), rand.Int64N(1e9), ext)
}
