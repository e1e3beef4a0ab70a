package iconset

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/chaos-io/oscar-icons/util"
)

const ProcessedName = "oscar-processed.png"

// IconName 返回指定尺寸图标的文件名，例如 icon16.png
func IconName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

type Generator struct {
	RemBG         BackgroundRemover
	Sizes         []int
	ProcessedName string
	IconName      func(size int) string

	// Out 接收进度输出，nil 时不输出
	Out io.Writer
}

func NewGenerator(out io.Writer) *Generator {
	return &Generator{
		RemBG:         NewWhiteRemBG(),
		Sizes:         DefaultSizes,
		ProcessedName: ProcessedName,
		IconName:      IconName,
		Out:           out,
	}
}

// Result 记录一次生成写出的文件
type Result struct {
	ProcessedPath string
	Processed     image.Rectangle
	Icons         []string
}

// Process 把任意输入图片变成
//
//	NRGBA（输入图片不会被修改）
//	白色背景变透明
//	裁剪到非透明像素的 bounding box；全透明时保留整张画布
func (g *Generator) Process(input image.Image) *image.NRGBA {
	src := g.RemBG.Remove(toNRGBA(input))

	bbox, found := AlphaBBox(src)
	if !found {
		slog.Debug("no opaque pixels, keep full canvas", "size", src.Bounds().Size())
		return src
	}

	slog.Debug("crop to bounding box", "bbox", bbox)
	return Crop(src, bbox)
}

// Generate 读取 sourcePath，把处理后的原尺寸图片和各尺寸图标写入 outDir
func (g *Generator) Generate(sourcePath, outDir string) (*Result, error) {
	img, err := util.OpenImage(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}

	processed := g.Process(img)

	res := &Result{
		ProcessedPath: filepath.Join(outDir, g.ProcessedName),
		Processed:     processed.Bounds(),
	}
	if err := util.SavePNG(res.ProcessedPath, processed); err != nil {
		return nil, fmt.Errorf("save %s: %w", g.ProcessedName, err)
	}
	g.printf("Saved %s (%dx%d)\n", g.ProcessedName, res.Processed.Dx(), res.Processed.Dy())

	for _, size := range g.Sizes {
		name := g.IconName(size)
		path := filepath.Join(outDir, name)
		if err := util.SavePNG(path, ResizeSquare(processed, size)); err != nil {
			return nil, fmt.Errorf("save %s: %w", name, err)
		}
		slog.Debug("wrote icon", "path", path, "size", size)

		res.Icons = append(res.Icons, path)
		g.printf("Saved %s\n", name)
	}

	return res, nil
}

func (g *Generator) printf(format string, args ...any) {
	if g.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(g.Out, format, args...)
}
