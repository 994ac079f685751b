package processor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/icon-padding/internal/models"
)

// compositeImage places content on a fully transparent canvas, using the
// content's own alpha as the mask.
func (p *ImageProcessor) compositeImage(content image.Image, layout models.PaddingLayout) *image.NRGBA {
	canvas := imaging.New(layout.NewWidth, layout.NewHeight, color.NRGBA{})
	return imaging.Overlay(canvas, content, image.Pt(layout.PaddingX, layout.PaddingY), 1.0)
}
