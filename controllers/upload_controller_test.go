package controllers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func uploadRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	router := gin.New()
	router.POST("/uploads", UploadImage)
	return router
}

func TestUploadImageBase64(t *testing.T) {
	router := uploadRouter(t)

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(tinyPNG)
	body, _ := json.Marshal(gin.H{"image": payload})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/uploads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			ImageURL string `json:"image_url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Contains(t, resp.Data.ImageURL, "uploads/")

	// The decoded bytes landed on disk
	saved, err := os.ReadFile(resp.Data.ImageURL)
	require.NoError(t, err)
	assert.Equal(t, tinyPNG, saved)
}

func TestUploadImageRejectsMissingPayload(t *testing.T) {
	router := uploadRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/uploads", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadImageRejectsBadBase64(t *testing.T) {
	router := uploadRouter(t)

	body, _ := json.Marshal(gin.H{"image": "data:image/png;base64,!!!not-base64!!!"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/uploads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadImageRejectsUnknownType(t *testing.T) {
	router := uploadRouter(t)

	body, _ := json.Marshal(gin.H{"image": "data:application/pdf;base64,aGVsbG8="})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/uploads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
