package service

import (
	"context"
	"io"
	"sync"

	"learning-resources/internal/domain"
)

// Shared mocks for service package tests.

type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

type mockStorageClient struct {
	mu      sync.Mutex
	calls   int
	lastDir string

	stored *domain.StoredObject
	err    error

	// progressSteps, when set, drives onProgress with these written counts
	// before returning.
	progressSteps []int64
}

func (m *mockStorageClient) Upload(ctx context.Context, file io.Reader, name, folder string, onProgress func(int64)) (*domain.StoredObject, error) {
	m.mu.Lock()
	m.calls++
	m.lastDir = folder
	m.mu.Unlock()

	if file != nil {
		_, _ = io.Copy(io.Discard, file)
	}
	for _, step := range m.progressSteps {
		if onProgress != nil {
			onProgress(step)
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.stored, nil
}

func (m *mockStorageClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockFileInfoClient struct {
	mu          sync.Mutex
	lookupCalls int
	lastName    string

	info *domain.FileInfo
	err  error

	files   []domain.FileInfo
	listErr error
}

func (m *mockFileInfoClient) Lookup(ctx context.Context, name string) (*domain.FileInfo, error) {
	m.mu.Lock()
	m.lookupCalls++
	m.lastName = name
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return m.info, nil
}

func (m *mockFileInfoClient) List(ctx context.Context) ([]domain.FileInfo, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.files, nil
}

func (m *mockFileInfoClient) lookupCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookupCalls
}

type mockAnalyticsClient struct {
	mu    sync.Mutex
	calls []string

	err error
}

func (m *mockAnalyticsClient) Track(ctx context.Context, kind domain.AnalyticsKind, resourceID string) error {
	m.mu.Lock()
	m.calls = append(m.calls, string(kind)+":"+resourceID)
	m.mu.Unlock()
	return m.err
}

func (m *mockAnalyticsClient) tracked() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
