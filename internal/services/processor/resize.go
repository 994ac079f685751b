package processor

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/icon-padding/internal/models"
)

func (p *ImageProcessor) resizeImage(img image.Image, layout models.PaddingLayout) *image.NRGBA {
	return imaging.Resize(img, layout.ContentWidth, layout.ContentHeight, imaging.Lanczos)
}
