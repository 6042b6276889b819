package application

import (
	"path/filepath"
	"strings"
)

const defaultContentType = "application/octet-stream"

// Matching is case-sensitive, like the catalog filter: "a.PNG" is not a png.
var contentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// ContentTypeFor infers the content type from the file extension alone.
func ContentTypeFor(filename string) string {
	if ct, ok := contentTypes[extension(filename)]; ok {
		return ct
	}
	return defaultContentType
}

// extension returns the part after the final dot, without the dot.
// A dotfile such as ".jpg" has no extension.
func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}
