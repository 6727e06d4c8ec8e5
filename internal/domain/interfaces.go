package domain

import "time"

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetStorageBaseURL() string
	GetFileInfoBaseURL() string
	GetResourceAPIBaseURL() string
	GetMaxUploadSize() int64
	GetMetadataLookupTimeout() time.Duration
	GetLogLevel() string
}
