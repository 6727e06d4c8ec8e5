// Package repository holds the HTTP clients for the remote services the
// application depends on: blob storage, the file-info service and the
// resource API.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"learning-resources/internal/domain"
	apperrors "learning-resources/pkg/errors"
)

// HTTPStorageClient implements domain.StorageClient against the blob upload
// endpoint.
type HTTPStorageClient struct {
	baseURL    string
	httpClient *http.Client
	logger     domain.Logger
}

// NewStorageClient creates a new blob storage client instance
func NewStorageClient(cfg domain.Config, logger domain.Logger) domain.StorageClient {
	return &HTTPStorageClient{
		baseURL:    cfg.GetStorageBaseURL(),
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

type uploadResponse struct {
	Data domain.StoredObject `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// countingReader reports the running byte count of the wrapped reader to
// onRead after every read.
type countingReader struct {
	r       io.Reader
	written int64
	onRead  func(written int64)
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.written += int64(n)
		if c.onRead != nil {
			c.onRead(c.written)
		}
	}
	return n, err
}

// Upload streams file as a multipart payload to the storage endpoint. The
// optional folder field places the object under a storage prefix. Progress
// reflects payload bytes read, not multipart framing overhead.
func (s *HTTPStorageClient) Upload(
	ctx context.Context,
	file io.Reader,
	name string,
	folder string,
	onProgress func(written int64),
) (*domain.StoredObject, error) {

	counted := &countingReader{r: file, onRead: onProgress}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, counted); err != nil {
			pw.CloseWithError(err)
			return
		}
		if folder != "" {
			if err := mw.WriteField("folder", folder); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/upload", pr)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build upload request", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError("upload request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The endpoint reports failures as {message}; use it verbatim when
		// present.
		var errBody errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Message != "" {
			return nil, apperrors.NewTransportError(errBody.Message, nil)
		}
		return nil, apperrors.NewTransportError(fmt.Sprintf("upload failed with status %d", resp.StatusCode), nil)
	}

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.NewTransportError("malformed upload response", err)
	}
	if body.Data.FileURL == "" {
		return nil, apperrors.NewTransportError("upload response missing file url", nil)
	}

	s.logger.Debug("upload stored", "fileName", body.Data.FileName, "bytes", counted.written)
	return &body.Data, nil
}
