package iconset

import (
	"image"

	"golang.org/x/image/draw"
)

// AlphaBBox 从 alpha 通道计算主体 bounding box
// alpha > 0 的像素都算主体；全透明时 found 为 false
func AlphaBBox(img *image.NRGBA) (bbox image.Rectangle, found bool) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	minX, minY := w, h
	maxX, maxY := 0, 0

	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			if img.Pix[row+x*4+3] == 0 {
				continue
			}
			found = true
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}

	if !found {
		return image.Rectangle{}, false
	}

	return image.Rect(minX, minY, maxX+1, maxY+1).Add(b.Min), true
}

// Crop 精确裁剪到 r，不留边，结果从 (0,0) 开始
func Crop(img *image.NRGBA, r image.Rectangle) *image.NRGBA {
	r = r.Intersect(img.Bounds())
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	copyRows(dst, img, r)
	return dst
}

// toNRGBA 复制为新的 NRGBA（非预乘），不修改调用方的图片
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		copyRows(dst, src, b)
		return dst
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// copyRows 按行复制 Pix；经过 draw 会先预乘，alpha 为 0 的像素颜色会丢失
func copyRows(dst, src *image.NRGBA, r image.Rectangle) {
	n := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		s := src.PixOffset(r.Min.X, r.Min.Y+y)
		d := y * dst.Stride
		copy(dst.Pix[d:d+n], src.Pix[s:s+n])
	}
}
