package github

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/auth"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, auth.BearerAuth{Token: "test-token"}, 5*time.Second)
}

func TestGetRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/repos/acme/widget/releases/42", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-11-28", r.Header.Get("X-GitHub-Api-Version"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"upload_url": "https://uploads.example.com/repos/acme/widget/releases/42/assets{?name,label}",
			"assets": [
				{"url": "https://api.example.com/repos/acme/widget/releases/assets/7", "id": 7, "name": "widget.zip"}
			]
		}`))
	}))
	defer srv.Close()

	release, err := newTestClient(srv.URL).GetRelease(context.Background(), "acme", "widget", "42")
	require.NoError(t, err)
	assert.Contains(t, release.UploadURL, "releases/42/assets")
	require.Len(t, release.Assets, 1)
	assert.Equal(t, int64(7), release.Assets[0].ID)
	assert.Equal(t, "widget.zip", release.Assets[0].Name)
}

func TestGetRelease_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetRelease(context.Background(), "acme", "widget", "42")
	require.Error(t, err)

	var statusErr *UnexpectedStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "Not Found")
}

func TestUploadAsset(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/acme/widget/releases/42/assets", r.URL.Path)
		assert.Equal(t, "widget.zip", r.URL.Query().Get("name"))
		assert.Equal(t, "Widget v1", r.URL.Query().Get("label"))
		assert.Equal(t, "application/zip", r.Header.Get("Content-Type"))
		assert.Equal(t, int64(12), r.ContentLength)

		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"browser_download_url": "https://example.com/download/widget.zip"}`))
	}))
	defer srv.Close()

	// The {?name,label} template suffix must be stripped before the query is appended.
	uploadURL := srv.URL + "/repos/acme/widget/releases/42/assets{?name,label}"
	uploaded, err := newTestClient(srv.URL).UploadAsset(context.Background(), uploadURL, model.AssetUpload{
		Name:          "widget.zip",
		Label:         "Widget v1",
		ContentType:   "application/zip",
		ContentLength: 12,
		Body:          strings.NewReader("zip-contents"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/download/widget.zip", uploaded.BrowserDownloadURL)
	assert.Equal(t, "zip-contents", gotBody)
}

func TestUploadAsset_OmitsEmptyLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasLabel := r.URL.Query()["label"]
		assert.False(t, hasLabel)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"browser_download_url": "https://example.com/d/a.bin"}`))
	}))
	defer srv.Close()

	uploadURL := srv.URL + "/repos/acme/widget/releases/42/assets{?name,label}"
	_, err := newTestClient(srv.URL).UploadAsset(context.Background(), uploadURL, model.AssetUpload{
		Name:        "a.bin",
		ContentType: "application/octet-stream",
		Body:        strings.NewReader("x"),
	})
	require.NoError(t, err)
}

func TestUploadAsset_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "Validation Failed"}`))
	}))
	defer srv.Close()

	uploadURL := srv.URL + "/repos/acme/widget/releases/42/assets{?name,label}"
	_, err := newTestClient(srv.URL).UploadAsset(context.Background(), uploadURL, model.AssetUpload{
		Name:        "a.bin",
		ContentType: "application/octet-stream",
		Body:        strings.NewReader("x"),
	})
	require.Error(t, err)

	var statusErr *UnexpectedStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "Validation Failed")
}

func TestDeleteAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/repos/acme/widget/releases/assets/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).DeleteAsset(context.Background(), srv.URL+"/repos/acme/widget/releases/assets/7")
	require.NoError(t, err)
}

func TestDeleteAsset_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "Forbidden"}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).DeleteAsset(context.Background(), srv.URL+"/assets/7")
	require.Error(t, err)

	var statusErr *UnexpectedStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
}
