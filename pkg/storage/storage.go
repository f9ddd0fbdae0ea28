package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotConfigured is returned when no bucket was configured at startup.
var ErrNotConfigured = errors.New("object storage is not configured")

type PutObjectOptions struct {
	Size        int64
	ContentType string
}

type ObjectInfo struct {
	Key  string
	Size int64
	ETag string
	URL  string
}

// Storage stores product images in an S3-compatible bucket.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type disabled struct{}

// Disabled returns a Storage whose writes fail with ErrNotConfigured.
func Disabled() Storage { return disabled{} }

func (disabled) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, ErrNotConfigured
}

func (disabled) Delete(context.Context, string) error { return ErrNotConfigured }

func (disabled) URL(string) string { return "" }
