package utils

import (
	"path/filepath"
	"strings"
)

// GetFileNameWithoutExt extracts the base filename without its extension.
func GetFileNameWithoutExt(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx != -1 {
		base = base[:idx]
	}
	return base
}

// SanitizeFileName replaces characters outside [a-zA-Z0-9-_.] so the name
// is safe to use on disk.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

// OutputFileName derives the download name for a converted document:
// original base name + suffix + ".docx".
func OutputFileName(original, suffix string) string {
	return SanitizeFileName(GetFileNameWithoutExt(original)) + suffix + ".docx"
}
