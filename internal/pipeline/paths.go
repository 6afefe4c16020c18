package pipeline

import (
	"path/filepath"
	"strings"
)

// SummaryPath is the audio path with its extension replaced by "_summary.txt".
func SummaryPath(audioPath string) string {
	return basePath(audioPath) + "_summary.txt"
}

// DocxPath is the audio path with its extension replaced by "_summary.docx".
func DocxPath(audioPath string) string {
	return basePath(audioPath) + "_summary.docx"
}

func basePath(p string) string {
	return strings.TrimSuffix(p, filepath.Ext(p))
}
