package domain

import "context"

// RendererKind identifies which renderer presents a file.
type RendererKind string

const (
	RendererImage   RendererKind = "image"
	RendererAudio   RendererKind = "audio"
	RendererVideo   RendererKind = "video"
	RendererPDF     RendererKind = "pdf"
	RendererText    RendererKind = "text"
	RendererGeneric RendererKind = "generic"
)

// RenderState is the lifecycle of one renderer instance:
// loading -> ready | errored. From errored the only affordance is the
// download URL; it is terminal, not a retry.
type RenderState string

const (
	RenderLoading RenderState = "loading"
	RenderReady   RenderState = "ready"
	RenderErrored RenderState = "errored"
)

// ViewerInput is the contract every renderer receives.
type ViewerInput struct {
	FileURL    string `json:"file_url"`
	Title      string `json:"title"`
	ResourceID string `json:"resource_id,omitempty"`
}

// Renderer presents one file-type category and owns its load/error
// lifecycle. Load drives the instance to a terminal state; a failure is
// reflected in both the returned error and State, and must never panic the
// hosting view.
type Renderer interface {
	Kind() RendererKind
	State() RenderState
	Err() error
	Load(ctx context.Context) error
	DownloadURL() string
}
