package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"learning-resources/internal/domain"
	apperrors "learning-resources/pkg/errors"
)

// HTTPFileInfoClient implements domain.FileInfoClient against the
// metadata/file-info service. Lookups are bounded by the configured timeout
// so a slow metadata service never stalls download start.
type HTTPFileInfoClient struct {
	baseURL       string
	lookupTimeout time.Duration
	httpClient    *http.Client
	logger        domain.Logger
}

// NewFileInfoClient creates a new file-info service client instance
func NewFileInfoClient(cfg domain.Config, logger domain.Logger) domain.FileInfoClient {
	return &HTTPFileInfoClient{
		baseURL:       cfg.GetFileInfoBaseURL(),
		lookupTimeout: cfg.GetMetadataLookupTimeout(),
		httpClient:    http.DefaultClient,
		logger:        logger,
	}
}

type lookupResponse struct {
	Data struct {
		Metadata domain.FileMetadata `json:"metadata"`
	} `json:"data"`
}

type listResponse struct {
	Data struct {
		Files []domain.FileInfo `json:"files"`
	} `json:"data"`
}

// Lookup queries the service by file name. A 200 response without a media
// link counts as a failed lookup, same as a network error; callers fall back
// either way.
func (c *HTTPFileInfoClient) Lookup(ctx context.Context, name string) (*domain.FileInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	endpoint := c.baseURL + "/files/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build file-info request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError("file-info lookup failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewTransportError(fmt.Sprintf("file-info lookup returned status %d", resp.StatusCode), nil)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.NewTransportError("malformed file-info response", err)
	}
	if body.Data.Metadata.MediaLink == "" {
		return nil, apperrors.NewTransportError("file-info response incomplete", domain.ErrMediaLinkMissing)
	}

	return &domain.FileInfo{Name: name, Metadata: body.Data.Metadata}, nil
}

// List returns the service's ordered file listing.
func (c *HTTPFileInfoClient) List(ctx context.Context) ([]domain.FileInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/files", nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build file list request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError("file list request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewTransportError(fmt.Sprintf("file list returned status %d", resp.StatusCode), nil)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.NewTransportError("malformed file list response", err)
	}

	return body.Data.Files, nil
}

// IndexByName keys a listing by the last path segment of each entry's name,
// which is how display and download logic address files.
func IndexByName(files []domain.FileInfo) map[string]domain.FileInfo {
	index := make(map[string]domain.FileInfo, len(files))
	for _, f := range files {
		index[LastPathSegment(f.Name)] = f
	}
	return index
}

// LastPathSegment returns the portion of name after the final slash.
func LastPathSegment(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
