package database

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/profile"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   []byte
}

type fakeElasticsearch struct {
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(r *http.Request) (int, string)
}

func (f *fakeElasticsearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: body})
	f.mu.Unlock()

	status, payload := f.respond(r)
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, payload)
}

func newTestDirectory(t *testing.T, respond func(r *http.Request) (int, string)) (*DirectoryIndex, *fakeElasticsearch) {
	t.Helper()
	fake := &fakeElasticsearch{respond: respond}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{server.URL}})
	require.NoError(t, err)
	return NewDirectoryIndex(client, "exhibitor-directory"), fake
}

func TestNewDirectoryDocument(t *testing.T) {
	p := createTestProfile(t)
	p.Version = 5
	p, err := profile.SetProductCount(p, 2)
	require.NoError(t, err)

	doc := NewDirectoryDocument(p, profile.Score(p))

	assert.Equal(t, p.ID, doc.ProfileID)
	assert.Equal(t, "gold", doc.PackageType)
	assert.Equal(t, []string{"de", "en"}, doc.Locales)
	assert.True(t, doc.HasProducts)
	assert.Equal(t, int64(5), doc.Version)
	assert.Equal(t, profile.Score(p).Overall, doc.Overall)
}

func TestDirectoryIndex_Index(t *testing.T) {
	dir, fake := newTestDirectory(t, func(r *http.Request) (int, string) {
		return http.StatusCreated, `{"_index":"exhibitor-directory","_id":"p-1","result":"created"}`
	})

	result, err := dir.Index(context.Background(), DirectoryDocument{ProfileID: "p-1", CompanyName: "Acme", Overall: 42})
	require.NoError(t, err)

	assert.Equal(t, "created", result)
	require.Len(t, fake.requests, 1)
	assert.Equal(t, http.MethodPut, fake.requests[0].Method)
	assert.Equal(t, "/exhibitor-directory/_doc/p-1", fake.requests[0].Path)

	var sent DirectoryDocument
	require.NoError(t, json.Unmarshal(fake.requests[0].Body, &sent))
	assert.Equal(t, 42, sent.Overall)
}

func TestDirectoryIndex_Index_ServerError(t *testing.T) {
	dir, _ := newTestDirectory(t, func(r *http.Request) (int, string) {
		return http.StatusInternalServerError, `{"error":{"type":"illegal_state_exception"}}`
	})

	_, err := dir.Index(context.Background(), DirectoryDocument{ProfileID: "p-1"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeDirectoryIndexFailed))
}

func TestDirectoryIndex_EnsureIndex(t *testing.T) {
	tests := []struct {
		name        string
		existsCode  int
		createCode  int
		createBody  string
		wantMethods []string
		wantErr     bool
	}{
		{"already there", http.StatusOK, 0, "", []string{http.MethodHead}, false},
		{"created", http.StatusNotFound, http.StatusOK, `{"acknowledged":true}`, []string{http.MethodHead, http.MethodPut}, false},
		{"lost race", http.StatusNotFound, http.StatusBadRequest, `{"error":{"type":"resource_already_exists_exception"}}`, []string{http.MethodHead, http.MethodPut}, false},
		{"rejected", http.StatusNotFound, http.StatusBadRequest, `{"error":{"type":"mapper_parsing_exception"}}`, []string{http.MethodHead, http.MethodPut}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, fake := newTestDirectory(t, func(r *http.Request) (int, string) {
				if r.Method == http.MethodHead {
					return tt.existsCode, ""
				}
				return tt.createCode, tt.createBody
			})

			err := dir.EnsureIndex(context.Background())
			if tt.wantErr {
				assert.True(t, errors.HasCode(err, errors.ErrCodeDirectoryIndexFailed))
			} else {
				assert.NoError(t, err)
			}

			methods := make([]string, 0, len(fake.requests))
			for _, r := range fake.requests {
				methods = append(methods, r.Method)
			}
			assert.Equal(t, tt.wantMethods, methods)
		})
	}
}

func TestDirectoryIndex_Delete(t *testing.T) {
	dir, _ := newTestDirectory(t, func(r *http.Request) (int, string) {
		return http.StatusNotFound, `{"result":"not_found"}`
	})

	assert.NoError(t, dir.Delete(context.Background(), "gone"))
}

func TestDirectoryIndex_Name(t *testing.T) {
	dir, _ := newTestDirectory(t, func(r *http.Request) (int, string) { return http.StatusOK, "{}" })
	assert.Equal(t, "exhibitor-directory", dir.Name())
}
