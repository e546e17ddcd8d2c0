package utils

import "strings"

// imageMimeTypeToExtension maps the image MIME types we can decode to their
// typical file extensions.
var imageMimeTypeToExtension = map[string]string{
	"image/bmp":  ".bmp",
	"image/gif":  ".gif",
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/tiff": ".tif",
	"image/webp": ".webp",
}

// GetImageExtension returns the file extension for a decodable image MIME
// type. ok is false for anything else, svg included.
func GetImageExtension(mimeType string) (ext string, ok bool) {
	// Remove parameters if present (e.g., "image/png; charset=binary")
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	ext, ok = imageMimeTypeToExtension[strings.ToLower(cleaned)]

	return ext, ok
}
