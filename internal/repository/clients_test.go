package repository

import (
	"time"
)

// testConfig implements domain.Config for repository tests.
type testConfig struct {
	storageBaseURL     string
	fileInfoBaseURL    string
	resourceAPIBaseURL string
	lookupTimeout      time.Duration
}

func (c *testConfig) GetServerPort() string         { return "8080" }
func (c *testConfig) GetStorageBaseURL() string     { return c.storageBaseURL }
func (c *testConfig) GetFileInfoBaseURL() string    { return c.fileInfoBaseURL }
func (c *testConfig) GetResourceAPIBaseURL() string { return c.resourceAPIBaseURL }
func (c *testConfig) GetMaxUploadSize() int64       { return 100 * 1024 * 1024 }
func (c *testConfig) GetLogLevel() string           { return "error" }

func (c *testConfig) GetMetadataLookupTimeout() time.Duration {
	if c.lookupTimeout == 0 {
		return time.Second
	}
	return c.lookupTimeout
}

type testLogger struct{}

func (l *testLogger) Info(msg string, fields ...interface{})             {}
func (l *testLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *testLogger) Debug(msg string, fields ...interface{})            {}
func (l *testLogger) Warn(msg string, fields ...interface{})             {}
