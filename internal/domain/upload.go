package domain

import "io"

// UploadPhase is the coarse-grained state of an upload session, used to gate
// UI and network actions.
type UploadPhase string

const (
	PhaseIdle       UploadPhase = "idle"
	PhaseValidating UploadPhase = "validating"
	PhaseUploading  UploadPhase = "uploading"
	PhaseCreating   UploadPhase = "creating"
	PhaseCompleted  UploadPhase = "completed"
	PhaseFailed     UploadPhase = "failed"
)

// Terminal reports whether the phase admits no further transitions.
func (p UploadPhase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}

// UploadSession tracks one in-flight upload. It is not persisted; a new
// session starts from idle.
type UploadSession struct {
	ID         string      `json:"id"`
	Phase      UploadPhase `json:"phase"`
	Percentage int         `json:"percentage"`
	FileName   string      `json:"file_name"`
	Error      string      `json:"error,omitempty"`
}

// UploadCandidate is a file selected for upload but not yet submitted.
type UploadCandidate struct {
	Name      string
	SizeBytes int64
	Content   io.Reader
}

// UploadMetadata is the caller-supplied description attached to a submit.
type UploadMetadata struct {
	Title       string
	Description string
	Category    string
}

// UploadResult is the session summary emitted through the completion
// callback, at most once per submit.
type UploadResult struct {
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}
