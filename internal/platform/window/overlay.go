package window

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Label metrics for basicfont.Face7x13.
const (
	labelPad     = 4
	glyphAdvance = 7
	labelHeight  = 13 + 2*labelPad
	labelAscent  = 11
)

// labelImage renders s in white on a translucent black box.
func labelImage(s string) *image.RGBA {
	w := len(s)*glyphAdvance + 2*labelPad
	img := image.NewRGBA(image.Rect(0, 0, w, labelHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 160}), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(labelPad, labelPad+labelAscent),
	}
	d.DrawString(s)
	return img
}
