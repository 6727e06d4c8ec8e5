package domain

import (
	"context"
	"io"
	"time"
)

// ResourceFile is the immutable description of a stored file, produced once
// at upload completion. A changed file implies a new ResourceFile.
type ResourceFile struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// FileMetadata is the byte-serving metadata held by the file-info service.
type FileMetadata struct {
	MediaLink   string    `json:"mediaLink"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	TimeCreated time.Time `json:"timeCreated"`
}

// FileInfo is one entry of the file-info service's listing.
type FileInfo struct {
	Name     string       `json:"name"`
	URL      string       `json:"url"`
	Metadata FileMetadata `json:"metadata"`
}

// StoredObject is what the blob storage endpoint reports back after a
// successful upload.
type StoredObject struct {
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
}

// StorageClient uploads file bytes to the blob storage endpoint. onProgress,
// when non-nil, receives the running count of payload bytes written.
type StorageClient interface {
	Upload(ctx context.Context, file io.Reader, name, folder string, onProgress func(written int64)) (*StoredObject, error)
}

// FileInfoClient queries the secondary file-info service.
type FileInfoClient interface {
	Lookup(ctx context.Context, name string) (*FileInfo, error)
	List(ctx context.Context) ([]FileInfo, error)
}

// AnalyticsClient posts usage signals to the primary resource API.
type AnalyticsClient interface {
	Track(ctx context.Context, kind AnalyticsKind, resourceID string) error
}

// AnalyticsKind selects which usage counter a Track call increments.
type AnalyticsKind string

const (
	AnalyticsView     AnalyticsKind = "view"
	AnalyticsDownload AnalyticsKind = "download"
)
