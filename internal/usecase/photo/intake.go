// Package photo turns uploaded or captured pictures into stored objects.
package photo

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/BruksfildServices01/headz-api/internal/imaging"
	"github.com/BruksfildServices01/headz-api/internal/storage"
)

type Intake struct {
	store storage.Store
	opts  imaging.Options
}

func NewIntake(store storage.Store, opts imaging.Options) *Intake {
	return &Intake{store: store, opts: opts}
}

// Save normalises the photo read from r and stores it under prefix,
// returning its public URL.
func (i *Intake) Save(ctx context.Context, prefix string, r io.Reader) (string, error) {
	p, err := imaging.Normalize(r, i.opts)
	if err != nil {
		return "", err
	}
	return i.store.Put(ctx, storage.NewKey(prefix, p.Ext), p.ContentType, p.Data)
}

// SaveDataURL stores a camera capture sent as a data URL.
func (i *Intake) SaveDataURL(ctx context.Context, prefix, dataURL string) (string, error) {
	data, _, err := imaging.DecodeDataURL(dataURL, i.opts.MaxBytes)
	if err != nil {
		return "", err
	}
	return i.Save(ctx, prefix, bytes.NewReader(data))
}

// Remove deletes an object previously returned by Save. URLs that point
// elsewhere (seeded stock photos) are ignored. Failures are only logged.
func (i *Intake) Remove(ctx context.Context, url string) {
	key, ok := i.store.KeyFromURL(url)
	if !ok {
		return
	}
	if err := i.store.Delete(ctx, key); err != nil {
		slog.WarnContext(ctx, "photo delete failed", "key", key, "error", err)
	}
}
