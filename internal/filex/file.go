// Package filex reads image files staged for upload.
package filex

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize caps attached images at 10 MB, matching the backend's upload
// limit.
const MaxImageSize = 10 << 20

var (
	ErrTooLarge       = errors.New("file exceeds 10MB limit")
	ErrUnsupportedExt = errors.New("unsupported image type")
)

// supported image extensions, lowercased.
var imageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// ReadImage loads an image file from path and returns its base name, MIME
// content type and contents. Files over MaxImageSize and non-image
// extensions are rejected before any bytes are read.
func ReadImage(path string) (name, contentType string, data []byte, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageExts[ext]; !ok {
		return "", "", nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", "", nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxImageSize {
		return "", "", nil, fmt.Errorf("%s: %w", path, ErrTooLarge)
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return "", "", nil, fmt.Errorf("read %s: %w", path, err)
	}

	contentType = mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return filepath.Base(path), contentType, data, nil
}
