// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/service"
)

// pngBytes is a PNG signature followed by an IHDR chunk header, enough for
// content sniffing.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestImageIngestor_Load_PNG(t *testing.T) {
	// the extension is deliberately wrong: content decides
	path := writeFile(t, "photo.txt", pngBytes)

	url, err := service.NewImageIngestor(1024, logger.Nop()).Load(context.Background(), path)
	require.NoError(t, err)

	prefix := "data:image/png;base64,"
	require.True(t, strings.HasPrefix(url, prefix), url)
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, prefix))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, payload)
}

func TestImageIngestor_Load_GIF(t *testing.T) {
	path := writeFile(t, "anim.gif", []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"))

	url, err := service.NewImageIngestor(0, logger.Nop()).Load(context.Background(), "  "+path+"  ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/gif;base64,"))
}

func TestImageIngestor_Load_NotAnImage(t *testing.T) {
	path := writeFile(t, "notes.png", []byte("just some text, not pixels"))

	_, err := service.NewImageIngestor(1024, logger.Nop()).Load(context.Background(), path)
	require.ErrorIs(t, err, service.ErrNotAnImage)
	assert.Contains(t, err.Error(), "text/plain")
}

func TestImageIngestor_Load_TooLarge(t *testing.T) {
	path := writeFile(t, "big.png", append(append([]byte{}, pngBytes...), make([]byte, 64)...))

	_, err := service.NewImageIngestor(int64(len(pngBytes)), logger.Nop()).Load(context.Background(), path)
	require.ErrorIs(t, err, service.ErrImageTooLarge)
}

func TestImageIngestor_Load_ExactlyAtLimit(t *testing.T) {
	path := writeFile(t, "fits.png", pngBytes)

	_, err := service.NewImageIngestor(int64(len(pngBytes)), logger.Nop()).Load(context.Background(), path)
	require.NoError(t, err)
}

func TestImageIngestor_Load_MissingFile(t *testing.T) {
	_, err := service.NewImageIngestor(1024, logger.Nop()).Load(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestImageIngestor_Load_CanceledContext(t *testing.T) {
	path := writeFile(t, "photo.png", pngBytes)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.NewImageIngestor(1024, logger.Nop()).Load(ctx, path)
	require.ErrorIs(t, err, context.Canceled)
}
