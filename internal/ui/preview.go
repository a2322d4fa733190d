package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decode image: empty body")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// renderImagePreview draws img as rows of half blocks. Each cell carries
// two vertical pixels: foreground on top, background below.
func renderImagePreview(img image.Image, width, maxRows int) []string {
	if img == nil || width <= 0 || maxRows <= 0 {
		return nil
	}
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil
	}
	cols := width
	if cols > srcW {
		cols = srcW
	}
	// Terminal cells are roughly twice as tall as wide, and each cell holds
	// two pixels, so one column per pixel keeps the aspect ratio.
	pixelRows := srcH * cols / srcW
	if pixelRows < 2 {
		pixelRows = 2
	}
	if pixelRows > maxRows*2 {
		pixelRows = maxRows * 2
		cols = srcW * pixelRows / srcH
		if cols < 1 {
			cols = 1
		}
	}
	sample := func(x, y int) string {
		sx := bounds.Min.X + x*srcW/cols
		sy := bounds.Min.Y + y*srcH/pixelRows
		return hexColor(img.At(sx, sy))
	}
	rows := make([]string, 0, pixelRows/2)
	for y := 0; y+1 < pixelRows; y += 2 {
		var b strings.Builder
		for x := 0; x < cols; x++ {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(sample(x, y))).
				Background(lipgloss.Color(sample(x, y+1)))
			b.WriteString(style.Render(halfBlock))
		}
		rows = append(rows, b.String())
	}
	return rows
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
