package images_test

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3blonde/grip-and-grin/internal/domain"
	"github.com/l3blonde/grip-and-grin/internal/images"
)

func newPipeline(t *testing.T) (*images.Pipeline, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := images.NewPipeline(images.Config{BaseDir: dir, PublicPath: "/uploads"})
	require.NoError(t, err)
	return p, dir
}

// pngUpload renders a solid PNG of the given size.
func pngUpload(t *testing.T, width, height int) images.Upload {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 80, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return images.Upload{
		Filename: "catch.png",
		Size:     int64(buf.Len()),
		Data:     buf.Bytes(),
	}
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestPipeline_Process(t *testing.T) {
	t.Run("stores the original and every derivative tier", func(t *testing.T) {
		p, dir := newPipeline(t)

		img, err := p.Process(pngUpload(t, 1600, 1200), "Trophy walleye")
		require.NoError(t, err)
		require.NotNil(t, img)

		assert.Equal(t, 1600, img.Width)
		assert.Equal(t, 1200, img.Height)
		assert.Equal(t, "Trophy walleye", img.AltText)
		assert.True(t, strings.HasPrefix(img.OriginalPath, "/uploads/originals/img_"))
		assert.True(t, strings.HasSuffix(img.OriginalPath, ".png"))
		assert.True(t, strings.HasSuffix(img.ThumbnailPath, ".webp"))

		originals := dirEntries(t, filepath.Join(dir, "originals"))
		require.Len(t, originals, 1)

		// Each tier holds the WEBP derivative plus its JPEG fallback.
		for _, tier := range []string{"thumbnails", "medium", "full"} {
			names := dirEntries(t, filepath.Join(dir, tier))
			require.Len(t, names, 2, "tier %s", tier)

			var webpSeen, jpegSeen bool
			for _, name := range names {
				switch filepath.Ext(name) {
				case ".webp":
					webpSeen = true
				case ".jpg":
					jpegSeen = true
				}
			}
			assert.True(t, webpSeen && jpegSeen, "tier %s", tier)
		}
	})

	t.Run("derivatives fit their boxes without cropping", func(t *testing.T) {
		p, dir := newPipeline(t)

		_, err := p.Process(pngUpload(t, 1600, 1200), "alt")
		require.NoError(t, err)

		boxes := map[string][2]int{
			"thumbnails": {300, 200},
			"medium":     {800, 600},
			"full":       {1200, 800},
		}
		for tier, box := range boxes {
			names := dirEntries(t, filepath.Join(dir, tier))
			for _, name := range names {
				if filepath.Ext(name) != ".jpg" {
					continue
				}
				f, err := os.Open(filepath.Join(dir, tier, name))
				require.NoError(t, err)
				cfg, _, err := image.DecodeConfig(f)
				f.Close()
				require.NoError(t, err)

				assert.LessOrEqual(t, cfg.Width, box[0], "tier %s width", tier)
				assert.LessOrEqual(t, cfg.Height, box[1], "tier %s height", tier)
				assert.Positive(t, cfg.Width)
				assert.Positive(t, cfg.Height)
			}
		}
	})

	t.Run("rejects oversized uploads without writing anything", func(t *testing.T) {
		p, dir := newPipeline(t)

		upload := pngUpload(t, 10, 10)
		upload.Size = images.MaxUploadSize + 1

		_, err := p.Process(upload, "alt")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Empty(t, dirEntries(t, filepath.Join(dir, "originals")))
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		p, dir := newPipeline(t)

		upload := images.Upload{
			Filename: "notes.txt",
			Size:     20,
			Data:     []byte("just some plain text"),
		}

		_, err := p.Process(upload, "alt")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Empty(t, dirEntries(t, filepath.Join(dir, "originals")))
	})

	t.Run("rejects uploads that carry a receive error", func(t *testing.T) {
		p, _ := newPipeline(t)

		upload := pngUpload(t, 10, 10)
		upload.Err = assert.AnError

		_, err := p.Process(upload, "alt")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("cleans up the original when the file fails to decode", func(t *testing.T) {
		p, dir := newPipeline(t)

		// Valid PNG magic so MIME sniffing passes, followed by garbage so
		// decoding fails.
		data := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0xde, 0xad}, 64)...)
		upload := images.Upload{Filename: "broken.png", Size: int64(len(data)), Data: data}

		_, err := p.Process(upload, "alt")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Empty(t, dirEntries(t, filepath.Join(dir, "originals")))
	})
}

func TestPipeline_Delete(t *testing.T) {
	t.Run("removes every stored variant", func(t *testing.T) {
		p, dir := newPipeline(t)

		img, err := p.Process(pngUpload(t, 640, 480), "alt")
		require.NoError(t, err)

		require.NoError(t, p.Delete(*img))

		assert.Empty(t, dirEntries(t, filepath.Join(dir, "originals")))
		for _, tier := range []string{"thumbnails", "medium", "full"} {
			assert.Empty(t, dirEntries(t, filepath.Join(dir, tier)), "tier %s", tier)
		}
	})

	t.Run("deleting twice is safe", func(t *testing.T) {
		p, _ := newPipeline(t)

		img, err := p.Process(pngUpload(t, 640, 480), "alt")
		require.NoError(t, err)

		require.NoError(t, p.Delete(*img))
		require.NoError(t, p.Delete(*img))
	})

	t.Run("empty paths are skipped", func(t *testing.T) {
		p, _ := newPipeline(t)

		require.NoError(t, p.Delete(domain.Image{}))
	})
}
