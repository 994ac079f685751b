package models

// DefaultPaddingPercent is the padding used when a request does not set one.
const DefaultPaddingPercent = 15.0

type PaddingRequest struct {
	InputPath      string
	OutputPath     string
	PaddingPercent float64
}

// NewPaddingRequest builds a request with the default padding percent.
func NewPaddingRequest(inputPath, outputPath string) *PaddingRequest {
	return &PaddingRequest{
		InputPath:      inputPath,
		OutputPath:     outputPath,
		PaddingPercent: DefaultPaddingPercent,
	}
}

// PaddingLayout describes where the original content sits on the padded canvas.
type PaddingLayout struct {
	OriginalWidth  int
	OriginalHeight int
	PaddingX       int
	PaddingY       int
	NewWidth       int
	NewHeight      int
	ContentWidth   int
	ContentHeight  int
}

type PaddingResult struct {
	Layout         PaddingLayout
	PaddingPercent float64
	OutputPath     string
}
