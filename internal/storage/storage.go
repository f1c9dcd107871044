// Package storage persists uploaded images on shared disk storage and
// hands out their public URLs. Files are tenant-agnostic: the owning
// tenant only holds the public path.
package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// MaxUploadSize is the upload cap enforced before any disk write.
const MaxUploadSize = 2 << 20 // 2MB

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Image content types accepted for logo/banner uploads.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ImageStore saves and deletes uploaded image files under one directory.
type ImageStore interface {
	// Save validates and persists an uploaded image, returning the
	// stored filename (not the public URL)
	Save(file *multipart.FileHeader) (string, error)
	// Delete removes a stored file; missing files are not an error
	Delete(filename string)
	// PublicURL maps a stored filename to the path served to clients
	PublicURL(filename string) string
}

type diskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a
// store writing into it.
func NewDiskStore(dir string) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	log.WithField("upload_dir", dir).Info("Upload storage ready")
	return &diskStore{dir: dir}, nil
}

func (s *diskStore) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("file too large: %d bytes (max %d)", file.Size, MaxUploadSize)
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("file type not allowed: %s (only images are accepted)", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := uniqueFilename(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	log.WithFields(logrus.Fields{
		"filename":     filename,
		"content_type": contentType,
		"size":         file.Size,
	}).Info("Image stored")
	return filename, nil
}

func (s *diskStore) Delete(filename string) {
	if filename == "" {
		return
	}
	// Only the basename is stored on tenants/products, but strip any
	// path the caller may pass (e.g. a full "/uploads/..." URL).
	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).WithField("filename", filename).Warn("Failed to delete stored image")
	}
}

func (s *diskStore) PublicURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/uploads/" + filepath.Base(filename)
}

// uniqueFilename keeps the original base name and extension, suffixed
// with a timestamp and random tail so repeated uploads never collide.
func uniqueFilename(original string) string {
	ext := filepath.Ext(original)
	name := original[:len(original)-len(ext)]
	name = filepath.Base(name)
	return fmt.Sprintf("%s-%d-%d%s", name, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}
