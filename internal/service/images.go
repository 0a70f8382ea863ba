// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
)

// ImageIngestor reads image files into data URLs that can be embedded in a
// memo body. Each call is independent, so the front end runs one per file
// and appends results as they complete.
type ImageIngestor struct {
	maxBytes int64
	logger   *logger.Logger
}

var _ ImageLoader = (*ImageIngestor)(nil)

// NewImageIngestor returns an ingestor rejecting files over maxBytes. A
// non-positive limit disables the check.
func NewImageIngestor(maxBytes int64, log *logger.Logger) *ImageIngestor {
	return &ImageIngestor{maxBytes: maxBytes, logger: log}
}

// Load reads the image at path and returns it as a
// "data:<mime>;base64,<payload>" URL. The MIME type is sniffed from the
// content, not taken from the file extension.
func (i *ImageIngestor) Load(ctx context.Context, path string) (string, error) {
	log := logger.FromContextOr(ctx, i.logger)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(strings.TrimSpace(path))
	if err != nil {
		log.Err(err).Str("func", "ImageIngestor.Load").Str("path", path).Msg("failed to open image")
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if i.maxBytes > 0 {
		r = io.LimitReader(f, i.maxBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		log.Err(err).Str("func", "ImageIngestor.Load").Str("path", path).Msg("failed to read image")
		return "", fmt.Errorf("read image: %w", err)
	}
	if i.maxBytes > 0 && int64(len(data)) > i.maxBytes {
		log.Warn().Str("func", "ImageIngestor.Load").Str("path", path).Int64("limit", i.maxBytes).Msg("image rejected: too large")
		return "", fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, i.maxBytes)
	}

	mime, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	if !strings.HasPrefix(mime, "image/") {
		log.Warn().Str("func", "ImageIngestor.Load").Str("path", path).Str("mime", mime).Msg("file rejected: not an image")
		return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, mime)
	}

	log.Debug().Str("func", "ImageIngestor.Load").Str("mime", mime).Int("bytes", len(data)).Msg("image loaded")
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
