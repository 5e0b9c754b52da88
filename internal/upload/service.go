package upload

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samajconnect/portal-backend/config"
	"github.com/samajconnect/portal-backend/internal/auditlog"
)

const maxFileSize = 25 << 20 // 25 MB

var (
	ErrFileTooLarge    = errors.New("file exceeds the 25MB limit")
	ErrUnsupportedType = errors.New("only image and PDF files are allowed")
)

var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

type Service struct {
	cfg      *config.Config
	auditSvc auditlog.Service
}

func NewService(cfg *config.Config, auditSvc auditlog.Service) *Service {
	return &Service{cfg: cfg, auditSvc: auditSvc}
}

// Store validates the upload and writes it under the configured upload
// directory. Size and content type are checked before any disk I/O.
func (s *Service) Store(c *gin.Context, file *multipart.FileHeader, actorID *uint) (string, error) {
	if file.Size > maxFileSize {
		return "", ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	ext, ok := allowedTypes[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	base = sanitizeBase(base)
	name := fmt.Sprintf("%s-%s%s", base, uuid.NewString()[:8], ext)

	if err := c.SaveUploadedFile(file, filepath.Join(s.cfg.UploadDir, name)); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	url := s.cfg.BaseURL + "/uploads/" + name
	s.audit(actorID, "FILE_UPLOADED", map[string]interface{}{
		"filename":     name,
		"content_type": contentType,
		"size":         file.Size,
	}, c.ClientIP())

	return url, nil
}

// sanitizeBase keeps filenames URL safe without losing readability.
func sanitizeBase(base string) string {
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "file"
	}
	return out
}

func (s *Service) audit(actorID *uint, action string, details map[string]interface{}, ip string) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.LogAction(context.Background(), actorID, action, details, ip, "SUCCESS")
}
