package util

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePNG_OpenImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	require.NoError(t, SavePNG(path, src))

	got, err := OpenImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), got.Bounds())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 40}, color.NRGBAModel.Convert(got.At(1, 1)))

	// 只留下目标文件，临时文件已被 rename
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.png", entries[0].Name())
}

func TestSavePNG_Overwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, SavePNG(path, image.NewNRGBA(image.Rect(0, 0, 4, 4))))

	got, err := OpenImage(path)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Bounds().Dx())
}

func TestSavePNG_MissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.png")
	err := SavePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
}

func TestOpenImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not an image"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.png")},
		{name: "corrupt file", path: corrupt},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			img, err := OpenImage(tt.path)
			assert.Error(t, err)
			assert.Nil(t, img)
		})
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ok, err := FileExists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(filepath.Join(dir, "b.png"))
	require.NoError(t, err)
	assert.False(t, ok)
}
