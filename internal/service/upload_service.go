package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"learning-resources/internal/domain"
	apperrors "learning-resources/pkg/errors"

	"github.com/google/uuid"
)

// terminalGrace is how long a finished session stays visible before the
// coordinator clears it, so callers can show the outcome.
const terminalGrace = 3 * time.Second

// UploadCoordinator drives one file at a time through
// validate -> transmit -> await-metadata -> complete/fail, surfacing
// progress along the way. A coordinator serializes submits: a new Submit is
// rejected while a prior one is non-terminal.
type UploadCoordinator struct {
	storage   domain.StorageClient
	validator *FileValidator
	logger    domain.Logger
	grace     time.Duration

	mu         sync.Mutex
	session    domain.UploadSession
	candidate  *domain.UploadCandidate
	title      string
	resetTimer *time.Timer

	onProgress func(percentage int)
	onComplete func(domain.UploadResult)
	onError    func(err error)
}

// NewUploadCoordinator creates a coordinator for a single upload session.
func NewUploadCoordinator(storage domain.StorageClient, validator *FileValidator, logger domain.Logger) *UploadCoordinator {
	return &UploadCoordinator{
		storage:   storage,
		validator: validator,
		logger:    logger,
		grace:     terminalGrace,
		session:   domain.UploadSession{Phase: domain.PhaseIdle},
	}
}

// OnProgress registers the progress callback. It may fire many times per
// submit; the percentage is monotonically non-decreasing.
func (c *UploadCoordinator) OnProgress(fn func(percentage int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onProgress = fn
}

// OnComplete registers the completion callback. It fires at most once per
// submit and never together with the error callback.
func (c *UploadCoordinator) OnComplete(fn func(domain.UploadResult)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onComplete = fn
}

// OnError registers the error callback.
func (c *UploadCoordinator) OnError(fn func(err error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onError = fn
}

// SelectFile stores the candidate and starts a fresh session. When no title
// has been set yet, one is derived from the file name with its trailing
// extension stripped.
func (c *UploadCoordinator) SelectFile(candidate domain.UploadCandidate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Phase.Terminal() {
		c.resetLocked()
	}

	c.candidate = &candidate
	c.session = domain.UploadSession{
		ID:       uuid.NewString(),
		Phase:    domain.PhaseIdle,
		FileName: candidate.Name,
	}
	if c.title == "" {
		c.title = strings.TrimSuffix(candidate.Name, filepath.Ext(candidate.Name))
	}
}

// Title returns the effective title for the current candidate.
func (c *UploadCoordinator) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

// Session returns a snapshot of the current session state.
func (c *UploadCoordinator) Session() domain.UploadSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Reset clears the candidate, title and metadata and returns the session to
// idle. Callers must not invoke it mid-upload.
func (c *UploadCoordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// Submit validates the selected file and the metadata exactly as given,
// then streams the file to the storage endpoint. An empty title fails
// validation; callers that want the auto-derived default pass Title()
// themselves. On success the completion callback receives the session
// summary, on any failure the error callback fires instead.
func (c *UploadCoordinator) Submit(ctx context.Context, meta domain.UploadMetadata) error {
	c.mu.Lock()
	if c.session.Phase != domain.PhaseIdle && !c.session.Phase.Terminal() {
		c.mu.Unlock()
		return apperrors.NewValidationError("an upload is already in progress", domain.ErrUploadInProgress)
	}
	if c.session.Phase.Terminal() {
		// A submit inside the grace window resets immediately.
		c.resetLocked()
	}
	candidate := c.candidate
	c.session.Phase = domain.PhaseValidating
	if candidate != nil {
		c.session.FileName = candidate.Name
	}
	c.mu.Unlock()

	if err := c.validator.Validate(candidate, meta); err != nil {
		c.fail(err)
		return err
	}

	c.setPhase(domain.PhaseUploading)

	folder := strings.ToLower(strings.TrimSpace(meta.Category))
	stored, err := c.storage.Upload(ctx, candidate.Content, candidate.Name, folder, func(written int64) {
		c.reportProgress(written, candidate.SizeBytes)
	})
	if err != nil {
		if ctx.Err() != nil {
			// Aborted by the caller: terminal, but no callback may fire.
			c.abort(ctx.Err())
			return err
		}
		c.fail(err)
		return err
	}

	c.forceFullProgress()
	// The server is finalizing metadata for the stored object.
	c.setPhase(domain.PhaseCreating)

	result := domain.UploadResult{
		FileName: stored.FileName,
		FileURL:  stored.FileURL,
		FileType: strings.TrimPrefix(strings.ToLower(filepath.Ext(candidate.Name)), "."),
		FileSize: candidate.SizeBytes,
	}
	c.complete(result)
	return nil
}

func (c *UploadCoordinator) setPhase(phase domain.UploadPhase) {
	c.mu.Lock()
	c.session.Phase = phase
	c.mu.Unlock()
}

func (c *UploadCoordinator) reportProgress(written, total int64) {
	pct := 100
	if total > 0 {
		pct = int(written * 100 / total)
		if pct > 100 {
			pct = 100
		}
	}

	c.mu.Lock()
	if pct <= c.session.Percentage {
		c.mu.Unlock()
		return
	}
	c.session.Percentage = pct
	fn := c.onProgress
	c.mu.Unlock()

	if fn != nil {
		fn(pct)
	}
}

// forceFullProgress guarantees the percentage reaches 100 before the phase
// leaves uploading, whatever granularity the transport reported at.
func (c *UploadCoordinator) forceFullProgress() {
	c.mu.Lock()
	if c.session.Percentage >= 100 {
		c.mu.Unlock()
		return
	}
	c.session.Percentage = 100
	fn := c.onProgress
	c.mu.Unlock()

	if fn != nil {
		fn(100)
	}
}

func (c *UploadCoordinator) complete(result domain.UploadResult) {
	c.mu.Lock()
	c.session.Phase = domain.PhaseCompleted
	fn := c.onComplete
	c.scheduleResetLocked()
	c.mu.Unlock()

	c.logger.Info("upload completed", "fileName", result.FileName, "size", result.FileSize)
	if fn != nil {
		fn(result)
	}
}

func (c *UploadCoordinator) fail(err error) {
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	c.mu.Lock()
	c.session.Phase = domain.PhaseFailed
	c.session.Error = message
	fileName := c.session.FileName
	fn := c.onError
	c.scheduleResetLocked()
	c.mu.Unlock()

	c.logger.Error("upload failed", err, "fileName", fileName)
	if fn != nil {
		fn(err)
	}
}

func (c *UploadCoordinator) abort(cause error) {
	c.mu.Lock()
	c.session.Phase = domain.PhaseFailed
	c.session.Error = "upload canceled"
	c.scheduleResetLocked()
	c.mu.Unlock()

	c.logger.Warn("upload aborted", "cause", cause)
}

func (c *UploadCoordinator) scheduleResetLocked() {
	if c.grace <= 0 {
		return
	}
	if c.resetTimer != nil {
		c.resetTimer.Stop()
	}
	c.resetTimer = time.AfterFunc(c.grace, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.session.Phase.Terminal() {
			c.resetLocked()
		}
	})
}

func (c *UploadCoordinator) resetLocked() {
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
	c.candidate = nil
	c.title = ""
	c.session = domain.UploadSession{Phase: domain.PhaseIdle}
}
