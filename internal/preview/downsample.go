package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// downsample scales a premultiplied render target down to size×size with
// CatmullRom filtering. Filtering premultiplied values keeps transparent
// edges from darkening.
func downsample(src *image.RGBA, size int) *image.RGBA {
	b := src.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func unpremultiply(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := src.PixOffset(x, y)
			di := out.PixOffset(x, y)
			a := float64(src.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				out.Pix[di] = clamp8(float64(src.Pix[si]) * inv)
				out.Pix[di+1] = clamp8(float64(src.Pix[si+1]) * inv)
				out.Pix[di+2] = clamp8(float64(src.Pix[si+2]) * inv)
			}
			out.Pix[di+3] = src.Pix[si+3]
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
