package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const imageURLPrefix = "/uploads/products/"

// UploadDir returns the root directory for uploaded files, served under
// /uploads by main.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// saveProductImage stores the uploaded file under a unique name and returns
// the public URL clients use to fetch it.
func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	saveDir := filepath.Join(UploadDir(), "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return imageURLPrefix + filename, nil
}

// removeProductImage deletes the blob behind a previously stored image URL.
// A missing file is not an error; the blob may already be gone.
func removeProductImage(imageURL string) {
	if !strings.HasPrefix(imageURL, imageURLPrefix) {
		return
	}
	filename := filepath.Base(strings.TrimPrefix(imageURL, imageURLPrefix))
	os.Remove(filepath.Join(UploadDir(), "products", filename))
}
