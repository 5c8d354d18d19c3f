package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonar43/portfolio-api/internal/middleware"
	"github.com/jonar43/portfolio-api/internal/storage"
)

const (
	maxImageSize  = 5 * 1024 * 1024
	maxResumeSize = 10 * 1024 * 1024

	assetKeyPrefix = "portfolio/"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type UploadHandler struct {
	assets *storage.AssetStore
}

func NewUploadHandler(assets *storage.AssetStore) *UploadHandler {
	return &UploadHandler{assets: assets}
}

// Image accepts a multipart "file" part, validates type and size, streams
// it to the asset bucket and returns the public URL.
func (h *UploadHandler) Image(c *gin.Context) {
	if h.assets == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "asset storage is not configured"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := imageExtensions[contentType]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only JPEG, PNG, WebP and GIF images are allowed"})
		return
	}

	if header.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maximum file size is 5MB"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	key := assetKeyPrefix + "images/" + uuid.New().String() + ext
	url, err := h.assets.Upload(c.Request.Context(), key, contentType, file)
	if err != nil {
		log.Printf("Failed to upload image: %v", err)
		middleware.RecordUpload("image", false)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	middleware.RecordUpload("image", true)
	c.JSON(http.StatusOK, gin.H{"url": url, "key": key})
}

// Resume accepts the resume PDF for the contact section.
func (h *UploadHandler) Resume(c *gin.Context) {
	if h.assets == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "asset storage is not configured"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType != "application/pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only PDF files are allowed"})
		return
	}

	if header.Size > maxResumeSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maximum file size is 10MB"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	key := assetKeyPrefix + "resume/" + uuid.New().String() + ".pdf"
	url, err := h.assets.Upload(c.Request.Context(), key, contentType, file)
	if err != nil {
		log.Printf("Failed to upload resume: %v", err)
		middleware.RecordUpload("resume", false)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	middleware.RecordUpload("resume", true)
	c.JSON(http.StatusOK, gin.H{"url": url, "key": key})
}

// Delete removes an asset by key. The route uses a wildcard because keys
// contain slashes.
func (h *UploadHandler) Delete(c *gin.Context) {
	if h.assets == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "asset storage is not configured"})
		return
	}

	key := strings.TrimPrefix(c.Param("key"), "/")
	if !strings.HasPrefix(key, assetKeyPrefix) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset key"})
		return
	}

	if err := h.assets.Delete(c.Request.Context(), key); err != nil {
		log.Printf("Failed to delete asset %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "asset deleted successfully"})
}
