// Package storage puts photos into object storage and hands back the public
// URL the frontend renders.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/config"
)

// Key prefixes mirror the bucket layout used by the web client.
const (
	PrefixHairstyles     = "hairstyles"
	PrefixProfiles       = "profiles"
	PrefixTryOnOriginals = "tryon/originals"
)

type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL recovers the object key of a URL this store produced.
	KeyFromURL(url string) (string, bool)
}

func NewKey(prefix, ext string) string {
	return path.Join(prefix, uuid.NewString()+"."+strings.TrimPrefix(ext, "."))
}

func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.StorageS3:
		return NewS3Store(cfg), nil
	case config.StorageLocal:
		return NewLocalStore(cfg.LocalDir, localPublicBase(cfg))
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func localPublicBase(cfg config.StorageConfig) string {
	if cfg.PublicURL != "" {
		return cfg.PublicURL
	}
	return LocalRoute
}

func trimBase(url, base string) (string, bool) {
	prefix := strings.TrimRight(base, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}
