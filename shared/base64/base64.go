package base64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrNotDataURL = errors.New("value is not a base64 data URL")

var extensions = map[string]string{
	"image/jpeg":      "jpg",
	"image/jpg":       "jpg",
	"image/png":       "png",
	"image/webp":      "webp",
	"image/gif":       "gif",
	"application/pdf": "pdf",
}

func GetContentType(file string) string {
	start := len(dataPrefix)
	end := strings.Index(file, base64Marker)

	if !strings.HasPrefix(file, dataPrefix) || end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// IsDataURL reports whether value looks like "data:<type>;base64,<payload>".
func IsDataURL(value string) bool {
	return GetContentType(value) != ""
}

// Decode splits a data URL into its content type and decoded payload.
func Decode(dataURL string) (contentType string, data []byte, err error) {
	contentType = GetContentType(dataURL)
	if contentType == "" {
		return "", nil, ErrNotDataURL
	}

	payload := dataURL[strings.Index(dataURL, base64Marker)+len(base64Marker):]

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode %s payload: %w", contentType, err)
	}

	return contentType, data, nil
}

// Extension returns the file extension for a content type, "bin" when unknown.
func Extension(contentType string) string {
	if ext, ok := extensions[strings.ToLower(contentType)]; ok {
		return ext
	}

	return "bin"
}
