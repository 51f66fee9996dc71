package ocr

import (
	"net/url"
	"path"
	"strings"
)

// DefaultMediaType is assumed when the caller declares nothing.
const DefaultMediaType = "image/jpeg"

var imageExtensions = map[string]bool{
	"jpeg": true, "jpg": true, "png": true, "webp": true, "gif": true, "bmp": true,
}

// Normalize classifies the input as PDF or image. The two checks are
// independent; anything that is not recognizably a PDF falls through to
// the image path, so ambiguity is resolved permissively.
func Normalize(declaredType, locator string) Kind {
	if declaredType == "" {
		declaredType = DefaultMediaType
	}
	if IsPDF(declaredType, locator) {
		return KindPDF
	}
	return KindImage
}

// IsPDF reports whether the declared type or locator path marks a PDF.
func IsPDF(declaredType, locator string) bool {
	if strings.Contains(strings.ToLower(declaredType), "pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(locatorPath(locator)), ".pdf")
}

// IsImage reports whether the declared type or locator path marks an image.
func IsImage(declaredType, locator string) bool {
	t := strings.ToLower(strings.TrimSpace(declaredType))
	if strings.HasPrefix(t, "image/") || imageExtensions[t] {
		return true
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(locatorPath(locator))), ".")
	return imageExtensions[ext]
}

// locatorPath strips query and fragment so signed URLs classify by their
// real path extension.
func locatorPath(locator string) string {
	if u, err := url.Parse(locator); err == nil && u.Path != "" {
		return u.Path
	}
	return locator
}
