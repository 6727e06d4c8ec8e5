package service

import (
	"context"
	"sync"
	"time"

	"learning-resources/internal/domain"
)

// notifyTimeout bounds a tracking call so a dead analytics endpoint cannot
// hold goroutines forever.
const notifyTimeout = 5 * time.Second

// AnalyticsNotifier sends fire-and-forget usage signals. Calls never block
// the primary flow and failures never reach the caller; at most one
// delivery is attempted per call.
type AnalyticsNotifier struct {
	client domain.AnalyticsClient
	logger domain.Logger

	wg sync.WaitGroup
}

// NewAnalyticsNotifier creates a new notifier instance.
func NewAnalyticsNotifier(client domain.AnalyticsClient, logger domain.Logger) *AnalyticsNotifier {
	return &AnalyticsNotifier{client: client, logger: logger}
}

// NotifyView records that a resource was viewed.
func (n *AnalyticsNotifier) NotifyView(resourceID string) {
	n.notify(domain.AnalyticsView, resourceID)
}

// NotifyDownload records that a resource was downloaded.
func (n *AnalyticsNotifier) NotifyDownload(resourceID string) {
	n.notify(domain.AnalyticsDownload, resourceID)
}

func (n *AnalyticsNotifier) notify(kind domain.AnalyticsKind, resourceID string) {
	if resourceID == "" {
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := n.client.Track(ctx, kind, resourceID); err != nil {
			n.logger.Debug("analytics notify failed", "kind", kind, "resourceId", resourceID, "error", err)
		}
	}()
}

// Flush waits for in-flight notifications; used on shutdown and in tests.
func (n *AnalyticsNotifier) Flush() {
	n.wg.Wait()
}
