package mockup

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownColor    = errors.New("unknown color")
)

type templateData struct {
	Color  Color
	Prompt string
}

// Render produces the full document for a category. The prompt is escaped
// by html/template before it reaches the markup.
func Render(category Category, color Color, prompt string) (string, error) {
	tmpl, ok := categoryTemplates[category]
	if !ok {
		return "", fmt.Errorf("render %q: %w", category, ErrUnknownCategory)
	}
	if !slices.Contains(palette, color) {
		return "", fmt.Errorf("render %q: %w", color, ErrUnknownColor)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Color: color, Prompt: prompt}); err != nil {
		return "", fmt.Errorf("render %s template: %w", category, err)
	}
	return Wrap(buf.String()), nil
}
