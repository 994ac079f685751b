package processor

import (
	"testing"

	"github.com/phambaophuc/icon-padding/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		percent  float64
		expected models.PaddingLayout
	}{
		{
			name: "Square icon at 20 percent", width: 512, height: 512, percent: 20,
			expected: models.PaddingLayout{
				OriginalWidth: 512, OriginalHeight: 512,
				PaddingX: 102, PaddingY: 102,
				NewWidth: 716, NewHeight: 716,
				ContentWidth: 512, ContentHeight: 512,
			},
		},
		{
			name: "Portrait at 15 percent", width: 100, height: 200, percent: 15,
			expected: models.PaddingLayout{
				OriginalWidth: 100, OriginalHeight: 200,
				PaddingX: 15, PaddingY: 30,
				NewWidth: 130, NewHeight: 260,
				ContentWidth: 100, ContentHeight: 200,
			},
		},
		{
			name: "Single pixel rounds padding down to zero", width: 1, height: 1, percent: 50,
			expected: models.PaddingLayout{
				OriginalWidth: 1, OriginalHeight: 1,
				NewWidth: 1, NewHeight: 1,
				ContentWidth: 1, ContentHeight: 1,
			},
		},
		{
			name: "Zero percent keeps size", width: 64, height: 48, percent: 0,
			expected: models.PaddingLayout{
				OriginalWidth: 64, OriginalHeight: 48,
				NewWidth: 64, NewHeight: 48,
				ContentWidth: 64, ContentHeight: 48,
			},
		},
		{
			name: "Axes round independently", width: 7, height: 13, percent: 25,
			expected: models.PaddingLayout{
				OriginalWidth: 7, OriginalHeight: 13,
				PaddingX: 1, PaddingY: 3,
				NewWidth: 9, NewHeight: 19,
				ContentWidth: 7, ContentHeight: 13,
			},
		},
		{
			name: "Fractional percent", width: 200, height: 200, percent: 12.5,
			expected: models.PaddingLayout{
				OriginalWidth: 200, OriginalHeight: 200,
				PaddingX: 25, PaddingY: 25,
				NewWidth: 250, NewHeight: 250,
				ContentWidth: 200, ContentHeight: 200,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeLayout(tt.width, tt.height, tt.percent))
		})
	}
}
