package iconset

import (
	"image"

	"github.com/nfnt/resize"
)

// DefaultSizes 浏览器扩展需要的图标尺寸（正方形）
var DefaultSizes = []int{16, 32, 48, 128}

// ResizeSquare 缩放为 size×size，忽略原始宽高比
func ResizeSquare(img image.Image, size int) image.Image {
	return resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
}
