package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"maze-projector/config"
)

var (
	labelFontOnce sync.Once
	labelFont     *opentype.Font
	labelFontErr  error
)

// LabelFace returns the embedded Go Bold font at the given pixel size
func LabelFace(size float64) (font.Face, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(gobold.TTF)
	})
	if labelFontErr != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", labelFontErr)
	}

	face, err := opentype.NewFace(labelFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create label face: %w", err)
	}
	return face, nil
}

// LabelSize returns the label font size for a cell size
func LabelSize(cellSize int) float64 {
	return max(float64(cellSize)*config.LabelScale, 6)
}
