package files

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"minio-storage/core/backend"
	"minio-storage/core/backend/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Storage) {
	app := fiber.New()
	store := new(mocks.Storage)
	svc := NewService(store, zap.NewNop(), nil)
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, store
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandleUpload(t *testing.T) {
	t.Run("StoresFile", func(t *testing.T) {
		app, store := setupTestApp(t)
		store.On("Save", mock.Anything, "a.txt", mock.Anything, int64(5), "application/octet-stream").
			Return("a.txt", nil)

		body, contentType := multipartBody(t, "file", "a.txt", "hello")
		req := httptest.NewRequest("POST", "/files", body)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var info backend.ObjectInfo
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
		assert.Equal(t, "a.txt", info.Name)
		assert.Equal(t, int64(5), info.Size)
	})

	t.Run("MissingFile", func(t *testing.T) {
		app, _ := setupTestApp(t)

		req := httptest.NewRequest("POST", "/files", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("BackendError", func(t *testing.T) {
		app, store := setupTestApp(t)
		store.On("Save", mock.Anything, "a.txt", mock.Anything, int64(5), "application/octet-stream").
			Return("", assert.AnError)

		body, contentType := multipartBody(t, "file", "a.txt", "hello")
		req := httptest.NewRequest("POST", "/files", body)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestHandleDownload(t *testing.T) {
	t.Run("StreamsContent", func(t *testing.T) {
		app, store := setupTestApp(t)
		store.On("Size", mock.Anything, "media/a.txt").Return(int64(5), nil)
		store.On("Open", mock.Anything, "media/a.txt").
			Return(io.NopCloser(bytes.NewReader([]byte("hello"))), nil)

		req := httptest.NewRequest("GET", "/files/blob/media/a.txt", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		data, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("NotFound", func(t *testing.T) {
		app, store := setupTestApp(t)
		store.On("Size", mock.Anything, "missing").Return(int64(0), backend.ErrNotFound)

		req := httptest.NewRequest("GET", "/files/blob/missing", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestHandleExists(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		app, store := setupTestApp(t)
		store.On("Exists", mock.Anything, "a.txt").Return(true, nil)

		req := httptest.NewRequest("HEAD", "/files/blob/a.txt", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Absent", func(t *testing.T) {
		app, store := setupTestApp(t)
		store.On("Exists", mock.Anything, "a.txt").Return(false, nil)

		req := httptest.NewRequest("HEAD", "/files/blob/a.txt", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestHandleDelete(t *testing.T) {
	app, store := setupTestApp(t)
	store.On("Delete", mock.Anything, "a.txt").Return(nil)

	req := httptest.NewRequest("DELETE", "/files/blob/a.txt", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "deleted", body["status"])
}

func TestHandleStat(t *testing.T) {
	app, store := setupTestApp(t)
	store.On("Size", mock.Anything, "a.txt").Return(int64(42), nil)

	req := httptest.NewRequest("GET", "/files/stat/a.txt", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var info backend.ObjectInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, int64(42), info.Size)
}

func TestHandleURL(t *testing.T) {
	t.Run("Public", func(t *testing.T) {
		app, store := setupTestApp(t)
		store.On("URL", "a.txt").Return("http://localhost:9000/media/a.txt")

		req := httptest.NewRequest("GET", "/files/url/a.txt", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "http://localhost:9000/media/a.txt", body["url"])
	})

	t.Run("Signed", func(t *testing.T) {
		app, store := setupTestApp(t)
		store.On("SignedURL", mock.Anything, "a.txt", mock.Anything).
			Return("http://localhost:9000/media/a.txt?X-Amz-Signature=abc", nil)

		req := httptest.NewRequest("GET", "/files/url/a.txt?signed=true&expiry=1h", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("BadExpiry", func(t *testing.T) {
		app, _ := setupTestApp(t)

		req := httptest.NewRequest("GET", "/files/url/a.txt?signed=true&expiry=soon", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleList(t *testing.T) {
	app, store := setupTestApp(t)
	store.On("List", mock.Anything, "media/").Return([]backend.ObjectInfo{
		{Name: "media/a.txt", Size: 5},
		{Name: "media/b.txt", Size: 7},
	}, nil)

	req := httptest.NewRequest("GET", "/files?prefix=media/", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var objects []backend.ObjectInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&objects))
	assert.Len(t, objects, 2)
}
