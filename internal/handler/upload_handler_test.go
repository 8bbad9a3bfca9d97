package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"sensen/backend/internal/config"

	"github.com/gin-gonic/gin"
)

func newUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	config.AppConfig = &config.Config{UploadDir: dir}

	router := gin.New()
	router.POST("/api/upload/image", UploadImage)
	router.POST("/api/upload/video", UploadVideo)
	return router, dir
}

// multipartBody builds a single-file multipart payload with an explicit
// part Content-Type, which is what the MIME check reads.
func multipartBody(t *testing.T, field, filename, contentType string, size int) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart returned error: %v", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte("a"), size)); err != nil {
		t.Fatalf("writing part body: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func doUpload(t *testing.T, router *gin.Engine, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func uploadsOnDisk(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading upload dir: %v", err)
	}
	return len(entries)
}

func TestUploadImageSuccess(t *testing.T) {
	router, dir := newUploadRouter(t)

	body, contentType := multipartBody(t, "image", "cover.jpg", "image/jpeg", 1024)
	rec := doUpload(t, router, "/api/upload/image", body, contentType)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp UploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !strings.HasPrefix(resp.URL, "/uploads/") {
		t.Fatalf("expected a /uploads/ URL, got %q", resp.URL)
	}
	if !strings.HasSuffix(resp.URL, "-cover.jpg") {
		t.Fatalf("expected the original filename in the URL, got %q", resp.URL)
	}
	if uploadsOnDisk(t, dir) != 1 {
		t.Fatal("expected exactly one file on disk")
	}
}

func TestUploadImageRejectsWrongMIMEType(t *testing.T) {
	router, dir := newUploadRouter(t)

	body, contentType := multipartBody(t, "image", "doc.pdf", "application/pdf", 1024)
	rec := doUpload(t, router, "/api/upload/image", body, contentType)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for application/pdf, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "não suportado") {
		t.Fatalf("expected unsupported-type message, got %s", rec.Body.String())
	}
	if uploadsOnDisk(t, dir) != 0 {
		t.Fatal("rejected upload must not reach the disk")
	}
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	router, dir := newUploadRouter(t)

	// 6 MB is over the 5 MB image limit.
	body, contentType := multipartBody(t, "image", "big.jpg", "image/jpeg", 6*1024*1024)
	rec := doUpload(t, router, "/api/upload/image", body, contentType)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for 6 MB image, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "muito grande") {
		t.Fatalf("expected file-too-large message, got %s", rec.Body.String())
	}
	if uploadsOnDisk(t, dir) != 0 {
		t.Fatal("rejected upload must not reach the disk")
	}
}

func TestUploadVideoAcceptsSixMegabytes(t *testing.T) {
	router, _ := newUploadRouter(t)

	// The same size that fails the image limit passes the 200 MB video
	// limit, but only with a matching video/* type.
	body, contentType := multipartBody(t, "video", "clip.mp4", "video/mp4", 6*1024*1024)
	rec := doUpload(t, router, "/api/upload/video", body, contentType)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for 6 MB video, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUploadVideoRejectsImageMIMEType(t *testing.T) {
	router, dir := newUploadRouter(t)

	// The generous video size limit is not a MIME bypass.
	body, contentType := multipartBody(t, "video", "big.jpg", "image/jpeg", 6*1024*1024)
	rec := doUpload(t, router, "/api/upload/video", body, contentType)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for image/* on the video endpoint, got %d", rec.Code)
	}
	if uploadsOnDisk(t, dir) != 0 {
		t.Fatal("rejected upload must not reach the disk")
	}
}

func TestUploadMissingFile(t *testing.T) {
	router, _ := newUploadRouter(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.Close()

	rec := doUpload(t, router, "/api/upload/image", body, writer.FormDataContentType())
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when no file is sent, got %d", rec.Code)
	}
}
