package domain

import "context"

// Strategy names, in the priority order the resolver runs them. The new-tab
// fallback is driven by the resolver's caller, never by the resolver itself.
const (
	StrategyMetadataService = "metadataService"
	StrategyDirectURL       = "directUrl"
	StrategyNewTabFallback  = "newTabFallback"
)

// FileRef identifies a stored file to the download resolver. URL is the
// possibly-stale reference recorded at upload time; Name keys the file-info
// lookup and may be empty, in which case it is derived from URL.
type FileRef struct {
	URL   string `json:"url"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// ResolutionStrategy is one named way of turning a FileRef into a fetchable
// URL. Attempt returns the URL or an error; it must not have side effects
// beyond the lookup itself.
type ResolutionStrategy interface {
	Name() string
	Attempt(ctx context.Context, ref FileRef) (string, error)
}

// DownloadAttempt records one strategy try within a single resolution call.
type DownloadAttempt struct {
	Strategy    string `json:"strategy"`
	Succeeded   bool   `json:"succeeded"`
	ResolvedURL string `json:"resolved_url,omitempty"`
	Err         error  `json:"-"`
}

// ResolvedDownload is the outcome of one resolution call. Attempts are in
// the order tried; resolution stops at the first success.
type ResolvedDownload struct {
	Succeeded    bool              `json:"succeeded"`
	EffectiveURL string            `json:"effective_url,omitempty"`
	StrategyUsed string            `json:"strategy_used,omitempty"`
	Attempts     []DownloadAttempt `json:"-"`
}
