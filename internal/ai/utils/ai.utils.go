package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	htmlFence  = regexp.MustCompile("(?m)^```html")
	plainFence = regexp.MustCompile("(?m)^```")
)

// StripCodeFences removes markdown fence markers that start a line and trims
// the result. Models add them despite being told not to.
func StripCodeFences(text string) string {
	text = htmlFence.ReplaceAllString(text, "")
	text = plainFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// SaveDocument writes a rendered document under dir, creating it if needed,
// and returns the written path.
func SaveDocument(dir, filename, document string) (string, error) {
	if filepath.Ext(filename) == "" {
		filename += ".html"
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	filePath := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(filePath, []byte(document), 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	return filePath, nil
}
