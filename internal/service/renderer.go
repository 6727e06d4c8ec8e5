package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"learning-resources/internal/domain"
	apperrors "learning-resources/pkg/errors"
)

// rendererState is the shared lifecycle every renderer embeds:
// loading -> ready | errored. The download affordance stays available from
// errored without changing state.
type rendererState struct {
	kind  domain.RendererKind
	input domain.ViewerInput

	mu    sync.Mutex
	state domain.RenderState
	err   error
}

func (r *rendererState) Kind() domain.RendererKind {
	return r.kind
}

func (r *rendererState) State() domain.RenderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *rendererState) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *rendererState) DownloadURL() string {
	return r.input.FileURL
}

func (r *rendererState) setReady() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = domain.RenderReady
}

func (r *rendererState) setErrored(err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = domain.RenderErrored
	r.err = err
	return err
}

// probeRenderer covers image, audio and pdf: the medium is handed to the
// client as-is, so readiness is a reachable URL with a renderable status.
type probeRenderer struct {
	rendererState
	httpClient *http.Client
	logger     domain.Logger
}

func newProbeRenderer(kind domain.RendererKind, input domain.ViewerInput, logger domain.Logger) *probeRenderer {
	return &probeRenderer{
		rendererState: rendererState{kind: kind, input: input, state: domain.RenderLoading},
		httpClient:    http.DefaultClient,
		logger:        logger,
	}
}

func (r *probeRenderer) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.input.FileURL, nil)
	if err != nil {
		return r.setErrored(apperrors.NewRenderError("invalid media url", err))
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return r.setErrored(apperrors.NewRenderError("media could not be loaded", err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return r.setErrored(apperrors.NewRenderError(fmt.Sprintf("media responded with status %d", resp.StatusCode), nil))
	}

	r.setReady()
	return nil
}

// videoRenderer adds the pre-emptive container check: mkv cannot be assumed
// playable inline, so it goes straight to errored without ever loading.
type videoRenderer struct {
	probeRenderer
}

func newVideoRenderer(input domain.ViewerInput, logger domain.Logger) *videoRenderer {
	r := &videoRenderer{
		probeRenderer: probeRenderer{
			rendererState: rendererState{kind: domain.RendererVideo, input: input, state: domain.RenderLoading},
			httpClient:    http.DefaultClient,
			logger:        logger,
		},
	}
	if isMKV(input) {
		r.state = domain.RenderErrored
		r.err = apperrors.NewRenderError("this video format cannot be played inline; download it instead", domain.ErrInlinePlayback)
	}
	return r
}

func (r *videoRenderer) Load(ctx context.Context) error {
	r.mu.Lock()
	if r.state == domain.RenderErrored {
		err := r.err
		r.mu.Unlock()
		return err
	}
	r.mu.Unlock()

	return r.probeRenderer.Load(ctx)
}

func isMKV(input domain.ViewerInput) bool {
	name := input.Title
	if ext := extensionOf(input.FileURL); ext != "" {
		return ext == "mkv"
	}
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) == "mkv"
}

// textRenderer fetches the content as bytes and decodes it before it can be
// ready; rendering the URL directly would trip cross-origin restrictions.
type textRenderer struct {
	rendererState
	httpClient *http.Client
	logger     domain.Logger

	content string
}

func newTextRenderer(input domain.ViewerInput, logger domain.Logger) *textRenderer {
	return &textRenderer{
		rendererState: rendererState{kind: domain.RendererText, input: input, state: domain.RenderLoading},
		httpClient:    http.DefaultClient,
		logger:        logger,
	}
}

func (r *textRenderer) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.input.FileURL, nil)
	if err != nil {
		return r.setErrored(apperrors.NewRenderError("invalid text url", err))
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return r.setErrored(apperrors.NewRenderError("text content could not be fetched", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return r.setErrored(apperrors.NewRenderError(fmt.Sprintf("text content responded with status %d", resp.StatusCode), nil))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return r.setErrored(apperrors.NewRenderError("text content read failed: "+err.Error(), err))
	}
	if !utf8.Valid(raw) {
		return r.setErrored(apperrors.NewRenderError("text content is not valid utf-8", nil))
	}

	r.mu.Lock()
	r.content = string(raw)
	r.mu.Unlock()
	r.setReady()
	return nil
}

// Content returns the decoded text once the renderer is ready.
func (r *textRenderer) Content() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.content
}

// genericRenderer is the total-mapping default: nothing to load, only the
// download affordance.
type genericRenderer struct {
	rendererState
}

func newGenericRenderer(input domain.ViewerInput) *genericRenderer {
	return &genericRenderer{
		rendererState: rendererState{kind: domain.RendererGeneric, input: input, state: domain.RenderLoading},
	}
}

func (r *genericRenderer) Load(_ context.Context) error {
	r.setReady()
	return nil
}
