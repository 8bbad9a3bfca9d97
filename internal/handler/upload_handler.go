package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sensen/backend/internal/config"

	"github.com/gin-gonic/gin"
)

const (
	maxImageSize = 5 * 1024 * 1024   // 5 MB
	maxVideoSize = 200 * 1024 * 1024 // 200 MB
)

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	URL string `json:"url" example:"/uploads/1700000000000-cover.jpg"`
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Accepts a single multipart file under the "image" field, image/* only, up to 5 MB.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image formData file true "Image file"
// @Success      200  {object}  UploadResponse
// @Failure      400  {object}  MessageResponse
// @Router       /upload/image [post]
func UploadImage(c *gin.Context) {
	saveUpload(c, "image", "image/", maxImageSize)
}

// UploadVideo godoc
// @Summary      Upload a video
// @Description  Accepts a single multipart file under the "video" field, video/* only, up to 200 MB.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        video formData file true "Video file"
// @Success      200  {object}  UploadResponse
// @Failure      400  {object}  MessageResponse
// @Router       /upload/video [post]
func UploadVideo(c *gin.Context) {
	saveUpload(c, "video", "video/", maxVideoSize)
}

// saveUpload validates the file before anything touches the uploads
// directory: MIME prefix first, then the size class for that prefix.
func saveUpload(c *gin.Context, field, mimePrefix string, maxSize int64) {
	file, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded."})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, mimePrefix) {
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Tipo de arquivo não suportado: %s.", contentType)})
		return
	}

	if file.Size > maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "O arquivo é muito grande. Tamanho máximo permitido é 200MB para vídeos e 5MB para imagens."})
		return
	}

	uploadDir := config.AppConfig.UploadDir
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving file", "error": err.Error()})
		return
	}

	// Millisecond timestamp plus the original name. Two uploads of the same
	// file in the same millisecond collide; known weakness.
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving file", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{URL: "/uploads/" + name})
}
