package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"learning-resources/internal/domain"
	apperrors "learning-resources/pkg/errors"
)

// HTTPAnalyticsClient implements domain.AnalyticsClient against the resource
// API's tracking endpoints.
type HTTPAnalyticsClient struct {
	baseURL    string
	httpClient *http.Client
	logger     domain.Logger
}

// NewAnalyticsClient creates a new analytics client instance
func NewAnalyticsClient(cfg domain.Config, logger domain.Logger) domain.AnalyticsClient {
	return &HTTPAnalyticsClient{
		baseURL:    cfg.GetResourceAPIBaseURL(),
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// Track posts an empty-body usage signal. The response body is drained and
// discarded; only the status matters, and even that only for the log.
func (c *HTTPAnalyticsClient) Track(ctx context.Context, kind domain.AnalyticsKind, resourceID string) error {
	endpoint := fmt.Sprintf("%s/resources/track-%s/%s", c.baseURL, kind, resourceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return apperrors.NewInternalError("failed to build tracking request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewTransportError("tracking request failed", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NewTransportError(fmt.Sprintf("tracking returned status %d", resp.StatusCode), nil)
	}
	return nil
}
