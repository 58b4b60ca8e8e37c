package plot

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Save encodes img to path. The extension selects the encoding: .png, .jpg or
// .jpeg. The file is closed before Save returns.
func Save(img image.Image, path string) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	var encode func(f *os.File) error
	switch ext {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File) error { return jpeg.Encode(f, img, &jpeg.Options{Quality: 95}) }
	default:
		return &RenderBackendError{Op: "save", Path: path, Err: fmt.Errorf("unsupported image extension %q", ext)}
	}

	f, err := os.Create(path)
	if err != nil {
		return &RenderBackendError{Op: "save", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &RenderBackendError{Op: "save", Path: path, Err: cerr}
		}
	}()
	if err := encode(f); err != nil {
		return &RenderBackendError{Op: "encode", Path: path, Err: err}
	}
	return nil
}
