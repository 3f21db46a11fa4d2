// Package storage abstracts photo uploads (profile photos, pet photos,
// caretaker home photos) behind a common interface with local-disk and S3
// backends.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	appconfig "github.com/tierischgutbetreut/tigube-v2-sub000/internal/config"

	"github.com/google/uuid"
)

// Storage stores and serves uploaded photos.
type Storage interface {
	// Upload stores a photo and returns its storage path.
	Upload(ctx context.Context, filename string, data io.Reader) (string, error)
	// Download retrieves a photo by storage path.
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)
	// Delete removes a photo by storage path. Missing photos are not an error.
	Delete(ctx context.Context, storagePath string) error
	// PublicURL returns the URL clients use to fetch the photo.
	PublicURL(storagePath string) string
}

// New creates the storage backend selected by the configuration.
func New(cfg *appconfig.Config) (Storage, error) {
	switch cfg.StorageType {
	case "local", "":
		path := cfg.StoragePath
		if path == "" {
			path = "./uploads"
		}
		return NewLocalStorage(path, cfg.StorageURL)
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3_BUCKET is required when STORAGE_TYPE is s3")
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}
}

// generateStoragePath builds a unique, sanitized path for an upload. The
// two-character prefix spreads objects across directories.
func generateStoragePath(filename string) string {
	id := uuid.New()
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	base = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\':
			return '_'
		}
		return r
	}, base)
	return fmt.Sprintf("%s/%s_%s%s", id.String()[:2], id.String(), base, ext)
}

// contentType guesses the MIME type of an upload from its extension.
func contentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
