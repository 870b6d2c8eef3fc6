package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrImageNotFound is returned by Image when no asset exists for a reference.
var ErrImageNotFound = errors.New("image not found")

// ImageRef names an embedded concept image. Layout: assets/<ref>.txt
type ImageRef string

//go:embed assets/*.txt
var assets embed.FS

// Image returns the glyph art for ref with trailing blank lines trimmed.
func Image(ref ImageRef) (string, error) {
	if ref == "" || strings.ContainsAny(string(ref), `/\`) {
		return "", fmt.Errorf("image %q: %w", ref, ErrImageNotFound)
	}
	b, err := fs.ReadFile(assets, "assets/"+string(ref)+".txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("image %q: %w", ref, ErrImageNotFound)
		}
		return "", fmt.Errorf("image %q: %w", ref, err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}
