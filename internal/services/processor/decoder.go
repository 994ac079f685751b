package processor

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// decodeImage reads the file at path and normalises it to NRGBA. Sources
// without an alpha channel come out fully opaque.
func (p *ImageProcessor) decodeImage(path string) (*image.NRGBA, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer file.Close()

	_, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	img, err := imaging.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return imaging.Clone(img), format, nil
}
