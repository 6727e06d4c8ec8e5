package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"learning-resources/internal/domain"
	apperrors "learning-resources/pkg/errors"
)

// DownloadResolver turns a stored file reference into a fetchable URL by
// running an ordered strategy chain: first success wins. Strategy failures
// before the last are logged and swallowed; only full exhaustion surfaces.
type DownloadResolver struct {
	strategies []domain.ResolutionStrategy
	httpClient *http.Client
	logger     domain.Logger
}

// NewDownloadResolver builds the default chain: file-info lookup first, the
// URL recorded at upload time second. The chain is open to extension
// without touching Resolve call sites.
func NewDownloadResolver(fileInfo domain.FileInfoClient, logger domain.Logger) *DownloadResolver {
	return &DownloadResolver{
		strategies: []domain.ResolutionStrategy{
			&metadataServiceStrategy{fileInfo: fileInfo},
			&directURLStrategy{},
		},
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// Resolve runs the strategies in priority order, sequentially, stopping at
// the first success. When every strategy fails the returned error is a
// resolution-exhausted AppError and Succeeded is false; partial failure is
// never reported as success.
func (r *DownloadResolver) Resolve(ctx context.Context, ref domain.FileRef) (*domain.ResolvedDownload, error) {
	resolved := &domain.ResolvedDownload{}

	for _, strategy := range r.strategies {
		resolvedURL, err := strategy.Attempt(ctx, ref)
		attempt := domain.DownloadAttempt{
			Strategy:    strategy.Name(),
			Succeeded:   err == nil,
			ResolvedURL: resolvedURL,
			Err:         err,
		}
		resolved.Attempts = append(resolved.Attempts, attempt)

		if err != nil {
			r.logger.Debug("download strategy failed", "strategy", strategy.Name(), "error", err)
			continue
		}

		resolved.Succeeded = true
		resolved.EffectiveURL = resolvedURL
		resolved.StrategyUsed = strategy.Name()
		return resolved, nil
	}

	r.logger.Warn("download resolution exhausted", "name", ref.Name, "url", ref.URL)
	return resolved, apperrors.NewResolutionExhaustedError("could not locate a working download link", domain.ErrResolutionExhausted)
}

// SaveTo streams the resolved URL into w. A failed trigger here is the
// point where degradation stops being silent: callers surface it and may
// fall back to opening the URL in a new browsing context.
func (r *DownloadResolver) SaveTo(ctx context.Context, effectiveURL string, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, effectiveURL, nil)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build download request", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, apperrors.NewTransportError("download trigger failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, apperrors.NewTransportError(fmt.Sprintf("download returned status %d", resp.StatusCode), nil)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, apperrors.NewTransportError("download stream interrupted", err)
	}
	return n, nil
}

// DownloadFileName derives the human-readable name a saved file gets:
// the title plus the extension from the reference, never the
// storage-internal name.
func DownloadFileName(ref domain.FileRef) string {
	ext := filepath.Ext(refFileName(ref))
	title := strings.TrimSpace(ref.Title)
	if title == "" {
		title = strings.TrimSuffix(refFileName(ref), ext)
	}
	if title == "" {
		title = "download"
	}
	return title + ext
}

// refFileName picks the lookup key for a reference: the explicit name, or
// the last path segment of the recorded URL.
func refFileName(ref domain.FileRef) string {
	if ref.Name != "" {
		return ref.Name
	}
	parsed, err := url.Parse(ref.URL)
	if err != nil || parsed.Path == "" {
		return path.Base(ref.URL)
	}
	return path.Base(parsed.Path)
}

// metadataServiceStrategy asks the file-info service for a long-lived media
// link. Any failure here is swallowed by the resolver since the direct URL
// is always available as the authoritative fallback.
type metadataServiceStrategy struct {
	fileInfo domain.FileInfoClient
}

func (s *metadataServiceStrategy) Name() string {
	return domain.StrategyMetadataService
}

func (s *metadataServiceStrategy) Attempt(ctx context.Context, ref domain.FileRef) (string, error) {
	name := refFileName(ref)
	if name == "" || name == "." {
		return "", domain.ErrNoRecordedURL
	}

	info, err := s.fileInfo.Lookup(ctx, name)
	if err != nil {
		return "", err
	}
	if info.Metadata.MediaLink == "" {
		return "", domain.ErrMediaLinkMissing
	}
	return info.Metadata.MediaLink, nil
}

// directURLStrategy falls back to the URL recorded at upload time.
type directURLStrategy struct{}

func (s *directURLStrategy) Name() string {
	return domain.StrategyDirectURL
}

func (s *directURLStrategy) Attempt(_ context.Context, ref domain.FileRef) (string, error) {
	if strings.TrimSpace(ref.URL) == "" {
		return "", domain.ErrNoRecordedURL
	}
	return ref.URL, nil
}
