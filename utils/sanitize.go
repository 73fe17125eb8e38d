package utils

import (
	"path"
	"strings"
)

// SafeExtension extracts a filesystem-safe extension from an original
// filename. Anything other than a short dot-prefixed alnum suffix is dropped.
func SafeExtension(name string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.TrimSpace(name))))
	if ext == "" || ext == "." || len(ext) > 16 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
