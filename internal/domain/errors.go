package domain

import "errors"

// Domain errors
var (
	ErrFileTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrMissingFile         = errors.New("no file selected")
	ErrMissingExtension    = errors.New("file name must include an extension")
	ErrMissingTitle        = errors.New("title is required")
	ErrMissingCategory     = errors.New("category is required")
	ErrUploadInProgress    = errors.New("an upload is already in progress")
	ErrMediaLinkMissing    = errors.New("file-info response has no media link")
	ErrNoRecordedURL       = errors.New("no recorded url for file")
	ErrResolutionExhausted = errors.New("all download strategies failed")
	ErrInlinePlayback      = errors.New("format cannot be played inline")
)
