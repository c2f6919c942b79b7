package arrow

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteSVG writes a rendered document to w.
func WriteSVG(doc []byte, w io.Writer) error {
	if _, err := w.Write(doc); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// ExportSVG writes a rendered document to a file at path, creating parent
// directories as needed. This is a convenience wrapper around [WriteSVG]
// for file-based output.
func ExportSVG(doc []byte, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSVG(doc, f)
}
