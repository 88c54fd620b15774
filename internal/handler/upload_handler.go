package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	_ "golang.org/x/image/webp"
)

// UploadImage 处理后台图片上传请求，校验文件确实可被解码后以唯一文件名落盘
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No image file provided")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	// 打开并解码文件头，拒绝伪装成图片的内容
	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}
	cfg, format, err := image.DecodeConfig(src)
	src.Close()
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		respondError(c, http.StatusBadRequest, "Uploaded file is not a valid image")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create upload directory")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = "." + format
	}
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	filePath := filepath.Join(a.uploadDir, newFilename)

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save file")
		return
	}

	if user, ok := currentUser(c); ok {
		log.Printf("image uploaded by %s: %s (%dx%d)", user.Username, newFilename, cfg.Width, cfg.Height)
	}

	fileURL := fmt.Sprintf("%s/%s", strings.TrimRight(a.uploadURL, "/"), newFilename)
	c.JSON(http.StatusCreated, gin.H{
		"url":    fileURL,
		"width":  cfg.Width,
		"height": cfg.Height,
	})
}
