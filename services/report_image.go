package services

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	_ "image/gif"
	_ "image/jpeg"
)

var (
	summaryBackground = color.White
	summaryTextColor  = color.Black
	photoPlaceholder  = color.RGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}
)

// RenderSummaryPNG rasterizes a summary layout onto the fixed canvas and
// returns the encoded PNG. Blocks that fall past the canvas bottom are
// skipped; the layout's Clipped count already reports them. Output is
// byte-identical for identical layouts.
func RenderSummaryPNG(layout Layout) ([]byte, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, layout.Width, layout.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(summaryBackground), image.Point{}, draw.Src)

	for _, block := range layout.Blocks {
		if block.Y+blockHeight(block.Kind) > layout.Height {
			continue
		}
		switch block.Kind {
		case BlockImage:
			drawPhoto(canvas, block)
		case BlockTitle, BlockGrandTotal:
			drawText(canvas, block.Text, block.X, block.Y, true)
		default:
			drawText(canvas, block.Text, block.X, block.Y, false)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode summary png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawText draws one line with the fixed-metric face. Emphasis redraws the
// glyphs shifted one pixel right, the classic faux-bold for bitmap fonts.
func drawText(dst *image.RGBA, text string, x, y int, emphasize bool) {
	face := basicfont.Face7x13

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(summaryTextColor),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)

	if emphasize {
		d.Dot = fixed.P(x+1, y+face.Ascent)
		d.DrawString(text)
	}
}

// drawPhoto decodes the attached blob and fits it into the fixed photo box.
// Undecodable blobs render as a flat placeholder square so the layout
// stays intact.
func drawPhoto(dst *image.RGBA, block Block) {
	box := image.Rect(block.X, block.Y, block.X+ImageBoxSize, block.Y+ImageBoxSize)

	src, _, err := image.Decode(bytes.NewReader(block.Image))
	if err != nil {
		draw.Draw(dst, box, image.NewUniform(photoPlaceholder), image.Point{}, draw.Src)
		return
	}

	fitted := imaging.Fit(src, ImageBoxSize, ImageBoxSize, imaging.Lanczos)
	target := image.Rect(
		block.X, block.Y,
		block.X+fitted.Bounds().Dx(), block.Y+fitted.Bounds().Dy(),
	)
	draw.Draw(dst, target, fitted, fitted.Bounds().Min, draw.Over)
}
