package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"learning-resources/internal/domain"
	apperrors "learning-resources/pkg/errors"
	"learning-resources/pkg/format"
)

// FileValidator runs the pure pre-flight checks on an upload candidate. No
// network call happens before it passes.
type FileValidator struct {
	maxSize int64
}

// NewFileValidator creates a validator using the configured size cap.
func NewFileValidator(cfg domain.Config) *FileValidator {
	return &FileValidator{maxSize: cfg.GetMaxUploadSize()}
}

// Validate checks the candidate and its metadata. It fails fast with a
// validation error whose cause is the matching domain sentinel.
func (v *FileValidator) Validate(candidate *domain.UploadCandidate, meta domain.UploadMetadata) error {
	if candidate == nil || candidate.Content == nil {
		return apperrors.NewValidationError("select a file before submitting", domain.ErrMissingFile)
	}
	if candidate.SizeBytes > v.maxSize {
		msg := fmt.Sprintf("file exceeds the %s limit", format.FormatFileSize(v.maxSize))
		return apperrors.NewValidationError(msg, domain.ErrFileTooLarge)
	}
	if strings.TrimSpace(candidate.Name) == "" || filepath.Ext(candidate.Name) == "" {
		return apperrors.NewValidationError("file name must include an extension", domain.ErrMissingExtension)
	}
	if strings.TrimSpace(meta.Title) == "" {
		return apperrors.NewValidationError("title is required", domain.ErrMissingTitle)
	}
	if strings.TrimSpace(meta.Category) == "" {
		return apperrors.NewValidationError("category is required", domain.ErrMissingCategory)
	}
	return nil
}
