package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learning-resources/internal/domain"
	apperrors "learning-resources/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/files/a.pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"metadata":{"mediaLink":"https://media/a.pdf","size":1024,"contentType":"application/pdf","timeCreated":"2025-03-01T10:00:00Z"}}}`))
	}))
	defer server.Close()

	client := NewFileInfoClient(&testConfig{fileInfoBaseURL: server.URL}, &testLogger{})

	info, err := client.Lookup(context.Background(), "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://media/a.pdf", info.Metadata.MediaLink)
	assert.Equal(t, int64(1024), info.Metadata.Size)
	assert.Equal(t, "application/pdf", info.Metadata.ContentType)
}

func TestLookup_MissingMediaLinkIsFailure(t *testing.T) {
	// A 200 without mediaLink counts as a failed lookup.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"metadata":{"size":1024}}}`))
	}))
	defer server.Close()

	client := NewFileInfoClient(&testConfig{fileInfoBaseURL: server.URL}, &testLogger{})

	_, err := client.Lookup(context.Background(), "a.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMediaLinkMissing)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeTransport))
}

func TestLookup_TimeoutBounded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	client := NewFileInfoClient(&testConfig{fileInfoBaseURL: server.URL, lookupTimeout: 30 * time.Millisecond}, &testLogger{})

	start := time.Now()
	_, err := client.Lookup(context.Background(), "slow.pdf")
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLookup_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewFileInfoClient(&testConfig{fileInfoBaseURL: server.URL}, &testLogger{})

	_, err := client.Lookup(context.Background(), "gone.pdf")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeTransport))
}

func TestList_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/files", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"files":[
			{"name":"math/a.pdf","url":"https://cdn/a.pdf","metadata":{"mediaLink":"https://media/a.pdf"}},
			{"name":"b.mp3","url":"https://cdn/b.mp3","metadata":{"mediaLink":"https://media/b.mp3"}}
		]}}`))
	}))
	defer server.Close()

	client := NewFileInfoClient(&testConfig{fileInfoBaseURL: server.URL}, &testLogger{})

	files, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "math/a.pdf", files[0].Name)
}

func TestIndexByName(t *testing.T) {
	files := []domain.FileInfo{
		{Name: "math/a.pdf", URL: "https://cdn/a.pdf"},
		{Name: "b.mp3", URL: "https://cdn/b.mp3"},
	}

	index := IndexByName(files)

	require.Len(t, index, 2)
	assert.Equal(t, "https://cdn/a.pdf", index["a.pdf"].URL)
	assert.Equal(t, "https://cdn/b.mp3", index["b.mp3"].URL)
}

func TestLastPathSegment(t *testing.T) {
	assert.Equal(t, "a.pdf", LastPathSegment("math/semester1/a.pdf"))
	assert.Equal(t, "a.pdf", LastPathSegment("a.pdf"))
	assert.Equal(t, "", LastPathSegment("trailing/"))
}
