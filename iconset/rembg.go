package iconset

import "image"

// DefaultThreshold 高于此值（严格大于）的 R、G、B 被视为白色背景
const DefaultThreshold uint8 = 240

type BackgroundRemover interface {
	Remove(img *image.NRGBA) *image.NRGBA
}

// WhiteRemBG 把接近白色的像素变为全透明
type WhiteRemBG struct {
	Threshold uint8
}

func NewWhiteRemBG() *WhiteRemBG {
	return &WhiteRemBG{
		Threshold: DefaultThreshold,
	}
}

// Remove 原地修改 img：R、G、B 均 > Threshold 的像素 alpha 置 0，颜色通道不变
func (w *WhiteRemBG) Remove(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	th := w.Threshold

	for y := 0; y < b.Dy(); y++ {
		row := y * img.Stride
		for x := 0; x < b.Dx(); x++ {
			i := row + x*4
			if img.Pix[i] > th && img.Pix[i+1] > th && img.Pix[i+2] > th {
				img.Pix[i+3] = 0
			}
		}
	}
	return img
}
