package processor

import (
	"github.com/phambaophuc/icon-padding/internal/models"
	"go.uber.org/zap"
)

type ImageProcessor struct {
	logger *zap.Logger
}

func NewImageProcessor(logger *zap.Logger) *ImageProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageProcessor{logger: logger}
}

// Pad writes a PNG copy of req.InputPath to req.OutputPath with transparent
// padding of req.PaddingPercent added on every side. The input is always
// treated as unpadded content, so padding an already padded image pads it again.
func (p *ImageProcessor) Pad(req *models.PaddingRequest) (*models.PaddingResult, error) {
	if err := p.validateRequest(req); err != nil {
		return nil, err
	}

	img, format, err := p.decodeImage(req.InputPath)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	p.logger.Debug("Image decoded",
		zap.String("path", req.InputPath),
		zap.String("format", format),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()))

	if err := p.validateCanvas(bounds.Dx(), bounds.Dy(), req.PaddingPercent); err != nil {
		return nil, err
	}

	layout := ComputeLayout(bounds.Dx(), bounds.Dy(), req.PaddingPercent)
	p.logger.Debug("Padding layout computed",
		zap.Float64("padding_percent", req.PaddingPercent),
		zap.Int("padding_x", layout.PaddingX),
		zap.Int("padding_y", layout.PaddingY),
		zap.Int("new_width", layout.NewWidth),
		zap.Int("new_height", layout.NewHeight))

	resized := p.resizeImage(img, layout)
	padded := p.compositeImage(resized, layout)

	if err := p.writeImage(req.OutputPath, padded); err != nil {
		return nil, err
	}
	p.logger.Debug("Padded image written", zap.String("path", req.OutputPath))

	return &models.PaddingResult{
		Layout:         layout,
		PaddingPercent: req.PaddingPercent,
		OutputPath:     req.OutputPath,
	}, nil
}
