// Package imaging normalises photos before they reach object storage:
// size limits, content sniffing, downscaling and WebP re-encoding.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/headz-api/internal/httperr"
)

const webpQuality = 85

// DefaultMaxPixels bounds width*height when Options.MaxPixels is zero.
const DefaultMaxPixels = 40_000_000

type Options struct {
	MaxBytes     int64
	MaxDimension int
	// MaxPixels caps width*height, checked from the header before decoding.
	MaxPixels int
	Transcode bool
}

func (o Options) maxPixels() int {
	if o.MaxPixels > 0 {
		return o.MaxPixels
	}
	return DefaultMaxPixels
}

type Photo struct {
	Data        []byte
	ContentType string
	Ext         string
	Width       int
	Height      int
}

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// Normalize reads at most opts.MaxBytes from r and returns a storable photo.
func Normalize(r io.Reader, opts Options) (*Photo, error) {
	data, err := io.ReadAll(io.LimitReader(r, opts.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if int64(len(data)) > opts.MaxBytes {
		return nil, httperr.ErrBusiness("file_too_large")
	}
	return NormalizeBytes(data, opts)
}

func NormalizeBytes(data []byte, opts Options) (*Photo, error) {
	if int64(len(data)) > opts.MaxBytes {
		return nil, httperr.ErrBusiness("file_too_large")
	}

	contentType := http.DetectContentType(data)
	ext, ok := extensions[contentType]
	if !ok {
		return nil, httperr.ErrBusiness("unsupported_image_type")
	}

	cfg, err := decodeConfig(data, contentType)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, httperr.ErrBusiness("invalid_image")
	}
	if cfg.Width > opts.maxPixels()/cfg.Height {
		return nil, httperr.ErrBusiness("image_too_large")
	}

	if !opts.Transcode {
		return &Photo{
			Data:        data,
			ContentType: contentType,
			Ext:         ext,
			Width:       cfg.Width,
			Height:      cfg.Height,
		}, nil
	}

	img, err := decode(data, contentType)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	img = Fit(img, opts.MaxDimension)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	b := img.Bounds()
	return &Photo{
		Data:        buf.Bytes(),
		ContentType: "image/webp",
		Ext:         "webp",
		Width:       b.Dx(),
		Height:      b.Dy(),
	}, nil
}

// Fit scales img down so its longest edge is at most maxDim, keeping the
// aspect ratio. Smaller images are returned unchanged.
func Fit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img
	}

	if w >= h {
		h = max(1, h*maxDim/w)
		w = maxDim
	} else {
		w = max(1, w*maxDim/h)
		h = maxDim
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func decode(data []byte, contentType string) (image.Image, error) {
	if contentType == "image/webp" {
		return webp.Decode(bytes.NewReader(data))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func decodeConfig(data []byte, contentType string) (image.Config, error) {
	if contentType == "image/webp" {
		return webp.DecodeConfig(bytes.NewReader(data))
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	return cfg, err
}

// DecodeDataURL parses a "data:<mime>;base64,<payload>" camera capture.
// Payloads that would decode to more than maxBytes are refused before
// decoding; maxBytes <= 0 disables the check.
func DecodeDataURL(s string, maxBytes int64) ([]byte, string, error) {
	meta, payload, found := strings.Cut(strings.TrimSpace(s), ",")
	if !found || !strings.HasPrefix(meta, "data:") || !strings.HasSuffix(meta, ";base64") {
		return nil, "", httperr.ErrBusiness("invalid_data_url")
	}

	mime := strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")

	// DecodedLen ignores padding, so allow for two extra bytes
	if maxBytes > 0 && int64(base64.StdEncoding.DecodedLen(len(payload))) > maxBytes+2 {
		return nil, "", httperr.ErrBusiness("file_too_large")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", httperr.ErrBusiness("invalid_data_url")
	}
	return data, mime, nil
}
