// Package uploads persists user-supplied images into the configured upload
// directory and hands back paths the static file server can resolve.
//
// Two paths exist: Ingest for base64 data-URI thumbnails embedded in course
// payloads, and SaveUpload for multipart avatar uploads.
package uploads

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/dalemusser/coursehub/internal/app/system/oid"
)

var (
	// ErrImageFormat means the payload is not shaped like an image data URI
	// or names an extension that cannot be written.
	ErrImageFormat = errors.New("invalid image format")

	// ErrImageData means the data-URI body is not decodable base64 or does
	// not parse as a raster image.
	ErrImageData = errors.New("invalid base64 image")
)

const dataURIPrefix = "data:image/"

// writableExts are the raster extensions the image encoder can write. The
// extension becomes part of the filename written under Dir, so anything
// outside this set is rejected before any path is built.
var writableExts = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"bmp":  true,
	"tif":  true,
	"tiff": true,
}

// Ingestor writes images into Dir and returns paths under URLPrefix.
type Ingestor struct {
	Dir       string
	URLPrefix string
}

// NewIngestor creates an Ingestor rooted at dir. The directory is created
// if it does not exist; a creation failure surfaces on the first write.
func NewIngestor(dir, urlPrefix string) *Ingestor {
	_ = os.MkdirAll(dir, 0o755)
	return &Ingestor{Dir: dir, URLPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

// Ingest decodes a "data:image/<ext>;base64,<payload>" string, verifies the
// payload is a loadable raster image, and writes it under a fresh ObjectID
// filename. It returns the static path, e.g. "/uploads/66b2….png".
//
// The write is not coordinated with any later database write: if the caller
// fails afterwards, the file is an orphan and stays on disk.
func (ing *Ingestor) Ingest(dataURI string) (string, error) {
	if !strings.HasPrefix(dataURI, dataURIPrefix) {
		return "", ErrImageFormat
	}
	header, encoded, ok := strings.Cut(dataURI, ",")
	if !ok {
		return "", ErrImageFormat
	}
	ext := strings.TrimPrefix(header, dataURIPrefix)
	ext, _, _ = strings.Cut(ext, ";")
	ext = strings.ToLower(ext)
	if !writableExts[ext] {
		return "", ErrImageFormat
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageData, err)
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageData, err)
	}

	filename := oid.New().Hex() + "." + ext
	if err := imaging.Save(img, filepath.Join(ing.Dir, filename)); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}

	return ing.URLPrefix + "/" + filename, nil
}

// SaveUpload stores an uploaded image under a unique name and returns its
// static path. Names follow the pattern <uuid8>-<sanitized original>. The
// original name must carry a writable raster extension and the content must
// decode as an image; the stored file is the re-encoded decode result, so
// non-image bytes never reach the static mount.
func (ing *Ingestor) SaveUpload(filename string, r io.Reader) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !writableExts[ext] {
		return "", ErrImageFormat
	}
	img, err := imaging.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageData, err)
	}

	uniqueName := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(filename))
	if err := imaging.Save(img, filepath.Join(ing.Dir, uniqueName)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return ing.URLPrefix + "/" + uniqueName, nil
}

// sanitizeFilename removes or replaces characters that could be problematic in filenames.
func sanitizeFilename(filename string) string {
	// Get just the filename, not any path components
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		// Truncate but preserve extension if present
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
