package config

import (
	"os"
	"strconv"
	"time"

	"learning-resources/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort            string
	StorageBaseURL        string
	FileInfoBaseURL       string
	ResourceAPIBaseURL    string
	MaxUploadSize         int64
	MetadataLookupTimeout time.Duration
	LogLevel              string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:         getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		StorageBaseURL:     getEnvOrDefault("STORAGE_BASE_URL", ""),
		FileInfoBaseURL:    getEnvOrDefault("FILE_INFO_BASE_URL", ""),
		ResourceAPIBaseURL: getEnvOrDefault("RESOURCE_API_BASE_URL", ""),
		// 100MB cap matching the upstream storage service's limit.
		MaxUploadSize:         getEnvInt64OrDefault("MAX_UPLOAD_SIZE", 100*1024*1024),
		MetadataLookupTimeout: getEnvDurationOrDefault("METADATA_LOOKUP_TIMEOUT", 4*time.Second),
		LogLevel:              getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetStorageBaseURL returns the blob storage endpoint base URL
func (c *AppConfig) GetStorageBaseURL() string {
	return c.StorageBaseURL
}

// GetFileInfoBaseURL returns the file-info service base URL
func (c *AppConfig) GetFileInfoBaseURL() string {
	return c.FileInfoBaseURL
}

// GetResourceAPIBaseURL returns the primary resource API base URL
func (c *AppConfig) GetResourceAPIBaseURL() string {
	return c.ResourceAPIBaseURL
}

// GetMaxUploadSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxUploadSize() int64 {
	return c.MaxUploadSize
}

// GetMetadataLookupTimeout bounds the file-info lookup so a slow metadata
// service cannot stall perceived download start.
func (c *AppConfig) GetMetadataLookupTimeout() time.Duration {
	return c.MetadataLookupTimeout
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
