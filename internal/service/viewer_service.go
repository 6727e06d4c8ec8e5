package service

import (
	"net/url"
	"path"
	"strings"

	"learning-resources/internal/domain"
)

// rendererByExtension is the fixed classification table. mkv is classified
// as video on purpose; the video renderer itself refuses to play it inline.
var rendererByExtension = map[string]domain.RendererKind{
	"mp3":  domain.RendererAudio,
	"wav":  domain.RendererAudio,
	"ogg":  domain.RendererAudio,
	"flac": domain.RendererAudio,
	"m4a":  domain.RendererAudio,
	"opus": domain.RendererAudio,

	"mp4":  domain.RendererVideo,
	"webm": domain.RendererVideo,
	"mov":  domain.RendererVideo,
	"mkv":  domain.RendererVideo,

	"pdf": domain.RendererPDF,

	"png":  domain.RendererImage,
	"jpg":  domain.RendererImage,
	"jpeg": domain.RendererImage,
	"gif":  domain.RendererImage,
	"webp": domain.RendererImage,

	"txt": domain.RendererText,
	"md":  domain.RendererText,
	"csv": domain.RendererText,
	"log": domain.RendererText,
}

// ViewerDispatcher maps a resource's declared or detected type to one of
// the renderer kinds. It holds no mutable state and performs no I/O; the
// assignment is recomputed per call since detection is cheap and files are
// immutable once named.
type ViewerDispatcher struct {
	logger domain.Logger
}

// NewViewerDispatcher creates a new dispatcher instance.
func NewViewerDispatcher(logger domain.Logger) *ViewerDispatcher {
	return &ViewerDispatcher{logger: logger}
}

// SelectRenderer classifies by file extension (case-insensitive), then by
// the declared MIME type, and defaults to generic. The mapping is total:
// no input makes it fail.
func (d *ViewerDispatcher) SelectRenderer(nameOrURL, declaredType string) domain.RendererKind {
	if ext := extensionOf(nameOrURL); ext != "" {
		if kind, ok := rendererByExtension[ext]; ok {
			return kind
		}
	}

	switch {
	case strings.HasPrefix(declaredType, "image/"):
		return domain.RendererImage
	case strings.HasPrefix(declaredType, "audio/"):
		return domain.RendererAudio
	case strings.HasPrefix(declaredType, "video/"):
		return domain.RendererVideo
	case declaredType == "application/pdf":
		return domain.RendererPDF
	case strings.HasPrefix(declaredType, "text/"):
		return domain.RendererText
	}

	return domain.RendererGeneric
}

// NewRenderer constructs the renderer for a kind, handing it the shared
// input contract. Each instance owns its own load/error lifecycle.
func (d *ViewerDispatcher) NewRenderer(kind domain.RendererKind, input domain.ViewerInput) domain.Renderer {
	switch kind {
	case domain.RendererImage, domain.RendererAudio, domain.RendererPDF:
		return newProbeRenderer(kind, input, d.logger)
	case domain.RendererVideo:
		return newVideoRenderer(input, d.logger)
	case domain.RendererText:
		return newTextRenderer(input, d.logger)
	default:
		return newGenericRenderer(input)
	}
}

// extensionOf extracts the lower-cased extension from a bare name or a URL,
// ignoring query and fragment parts.
func extensionOf(nameOrURL string) string {
	candidate := nameOrURL
	if parsed, err := url.Parse(nameOrURL); err == nil && parsed.Path != "" {
		candidate = parsed.Path
	}

	ext := path.Ext(candidate)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
