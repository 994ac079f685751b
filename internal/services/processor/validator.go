package processor

import (
	"fmt"
	"math"

	"github.com/phambaophuc/icon-padding/internal/models"
)

func (p *ImageProcessor) validateRequest(req *models.PaddingRequest) error {
	if req == nil {
		return fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}
	if req.InputPath == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalidRequest)
	}
	if req.OutputPath == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidRequest)
	}
	if math.IsNaN(req.PaddingPercent) || math.IsInf(req.PaddingPercent, 0) || req.PaddingPercent < 0 {
		return fmt.Errorf("%w: padding percent %v must be a finite non-negative number", ErrInvalidRequest, req.PaddingPercent)
	}
	return nil
}

// maxCanvasPixels bounds the padded canvas at 1 GiB of NRGBA pixel data.
const maxCanvasPixels = 1 << 28

// validateCanvas rejects padding whose canvas cannot be allocated. The size is
// computed in floating point so it cannot overflow int before the check.
func (p *ImageProcessor) validateCanvas(width, height int, percent float64) error {
	newWidth := float64(width) + 2*math.Floor(float64(width)*percent/100)
	newHeight := float64(height) + 2*math.Floor(float64(height)*percent/100)
	if newWidth*newHeight > maxCanvasPixels {
		return fmt.Errorf("%w: padding %v%% of %dx%d exceeds the maximum canvas of %d pixels",
			ErrInvalidRequest, percent, width, height, maxCanvasPixels)
	}
	return nil
}
