package processor

import (
	"math"

	"github.com/phambaophuc/icon-padding/internal/models"
)

// ComputeLayout returns the padded canvas geometry for an image of the given
// size. Padding on each axis is the floor of percent of that axis' length.
func ComputeLayout(width, height int, percent float64) models.PaddingLayout {
	paddingX := int(math.Floor(float64(width) * percent / 100))
	paddingY := int(math.Floor(float64(height) * percent / 100))

	newWidth := width + 2*paddingX
	newHeight := height + 2*paddingY

	return models.PaddingLayout{
		OriginalWidth:  width,
		OriginalHeight: height,
		PaddingX:       paddingX,
		PaddingY:       paddingY,
		NewWidth:       newWidth,
		NewHeight:      newHeight,
		ContentWidth:   newWidth - 2*paddingX,
		ContentHeight:  newHeight - 2*paddingY,
	}
}
