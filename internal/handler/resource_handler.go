// Package handler provides HTTP handlers for the gateway API.
package handler

import (
	"net/http"

	"learning-resources/internal/config"
	"learning-resources/internal/domain"
	"learning-resources/internal/repository"

	"github.com/gorilla/mux"
)

const maxMultipartMemory = 32 << 20

// ResourceHandler handles upload, download-resolution and view requests.
type ResourceHandler struct {
	container *config.Container
	logger    domain.Logger
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(container *config.Container) *ResourceHandler {
	return &ResourceHandler{
		container: container,
		logger:    container.Logger,
	}
}

// UploadResource accepts a multipart form with fields file, title,
// description and category, and drives a full upload session.
func (h *ResourceHandler) UploadResource(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	coordinator := h.container.NewUploadCoordinator()
	coordinator.SelectFile(domain.UploadCandidate{
		Name:      header.Filename,
		SizeBytes: header.Size,
		Content:   file,
	})

	var result domain.UploadResult
	coordinator.OnComplete(func(res domain.UploadResult) {
		result = res
	})

	meta := domain.UploadMetadata{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
	}
	// An omitted title field falls back to the name-derived default; a
	// present-but-empty one is submitted as-is and fails validation.
	if _, ok := r.MultipartForm.Value["title"]; !ok {
		meta.Title = coordinator.Title()
	}

	if err := coordinator.Submit(r.Context(), meta); err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": result})
}

// ResolveDownload locates a working byte-serving URL for a stored file and
// reports which strategy produced it. The actual save (and any new-tab
// fallback) stays with the caller.
func (h *ResourceHandler) ResolveDownload(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceID := vars["id"]

	ref := fileRefFromQuery(r)
	if ref.URL == "" && ref.Name == "" {
		writeError(w, http.StatusBadRequest, "url or name query parameter is required")
		return
	}

	resolved, err := h.container.Downloads.Resolve(r.Context(), ref)
	if err != nil {
		writeAppError(w, err)
		return
	}

	h.container.Analytics.NotifyDownload(resourceID)
	writeJSON(w, http.StatusOK, resolved)
}

type viewResponse struct {
	Kind        domain.RendererKind `json:"kind"`
	State       domain.RenderState  `json:"state"`
	DownloadURL string              `json:"download_url"`
	Error       string              `json:"error,omitempty"`
}

// ViewResource resolves a URL, picks the renderer for the file type and
// runs it to a terminal state. A render failure is a handled state with a
// download affordance, not an HTTP error.
func (h *ResourceHandler) ViewResource(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceID := vars["id"]

	ref := fileRefFromQuery(r)
	if ref.URL == "" && ref.Name == "" {
		writeError(w, http.StatusBadRequest, "url or name query parameter is required")
		return
	}

	resolved, err := h.container.Downloads.Resolve(r.Context(), ref)
	if err != nil {
		writeAppError(w, err)
		return
	}

	nameOrURL := ref.Name
	if nameOrURL == "" {
		nameOrURL = ref.URL
	}
	kind := h.container.Viewer.SelectRenderer(nameOrURL, r.URL.Query().Get("type"))
	renderer := h.container.Viewer.NewRenderer(kind, domain.ViewerInput{
		FileURL:    resolved.EffectiveURL,
		Title:      ref.Title,
		ResourceID: resourceID,
	})

	if renderer.State() == domain.RenderLoading {
		_ = renderer.Load(r.Context())
	}

	h.container.Analytics.NotifyView(resourceID)

	resp := viewResponse{
		Kind:        renderer.Kind(),
		State:       renderer.State(),
		DownloadURL: renderer.DownloadURL(),
	}
	if rendErr := renderer.Err(); rendErr != nil {
		resp.Error = rendErr.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListFiles exposes the file-info listing for display logic, indexed by the
// last path segment of each name.
func (h *ResourceHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.container.FileInfoClient.List(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"files": files,
			"index": repository.IndexByName(files),
		},
	})
}

func fileRefFromQuery(r *http.Request) domain.FileRef {
	q := r.URL.Query()
	return domain.FileRef{
		URL:   q.Get("url"),
		Name:  q.Get("name"),
		Title: q.Get("title"),
	}
}
