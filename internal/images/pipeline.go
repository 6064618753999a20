// Package images implements the featured-image pipeline: upload
// validation, multi-resolution derivatives, and storage path
// management.
package images

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"github.com/l3blonde/grip-and-grin/internal/domain"
	"github.com/l3blonde/grip-and-grin/internal/metrics"
)

const (
	// MaxUploadSize is the largest accepted upload in bytes (10 MiB).
	MaxUploadSize = 10 * 1024 * 1024

	// encodeQuality is used for both the WEBP and JPEG encodes.
	encodeQuality = 85

	originalsDir = "originals"
)

// tier is a named derivative box size. Derivatives are aspect-fitted
// into the box, never cropped.
type tier struct {
	name   string
	width  int
	height int
}

var tiers = []tier{
	{"thumbnails", 300, 200},
	{"medium", 800, 600},
	{"full", 1200, 800},
}

// allowedTypes maps accepted sniffed MIME types to the extension used
// for the stored original.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Upload is a raw file received from a multipart form. Err carries any
// error reported while the file was received; an upload with a non-nil
// Err is rejected without touching the filesystem.
type Upload struct {
	Filename string
	Size     int64
	Data     []byte
	Err      error
}

// Config points the pipeline at its storage area. BaseDir is the
// filesystem root holding the originals/ and derivative subdirectories;
// PublicPath is the URL prefix under which the same tree is served.
type Config struct {
	BaseDir    string
	PublicPath string
}

// Pipeline validates uploads and produces the stored original plus
// thumbnail, medium, and full derivatives. Each derivative is written
// twice: a WEBP encode and a JPEG fallback sharing the same base name.
type Pipeline struct {
	baseDir    string
	publicPath string
}

// NewPipeline creates the storage directories up front so individual
// uploads never race on mkdir.
func NewPipeline(cfg Config) (*Pipeline, error) {
	dirs := []string{originalsDir}
	for _, t := range tiers {
		dirs = append(dirs, t.name)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(cfg.BaseDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create upload directory %s: %w", dir, err)
		}
	}
	return &Pipeline{
		baseDir:    cfg.BaseDir,
		publicPath: strings.TrimRight(cfg.PublicPath, "/"),
	}, nil
}

// Process validates the upload, stores the original, and writes every
// derivative tier. The returned Image references the WEBP derivative
// paths; the JPEG fallbacks are same-named siblings discoverable by
// extension swap. Derivative writes are not transactional: a failure
// partway through leaves earlier tiers in place.
func (p *Pipeline) Process(upload Upload, altText string) (*domain.Image, error) {
	start := time.Now()

	img, err := p.process(upload, altText)
	if err != nil {
		if domain.IsValidation(err) {
			metrics.ImagesProcessedTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.ImagesProcessedTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.ImagesProcessedTotal.WithLabelValues("success").Inc()
	metrics.ImageProcessingDuration.Observe(time.Since(start).Seconds())
	return img, nil
}

func (p *Pipeline) process(upload Upload, altText string) (*domain.Image, error) {
	ext, err := validate(upload)
	if err != nil {
		return nil, err
	}

	base := "img_" + uuid.NewString()
	originalName := base + ext
	originalPath := filepath.Join(p.baseDir, originalsDir, originalName)

	if err := os.WriteFile(originalPath, upload.Data, 0o644); err != nil {
		return nil, fmt.Errorf("store original: %w", err)
	}

	// Re-read the stored file for authoritative dimensions. A file can
	// pass MIME sniffing and still not decode; clean up the original
	// before failing.
	src, err := decode(originalPath)
	if err != nil {
		_ = os.Remove(originalPath)
		return nil, domain.NewValidationError("image", "uploaded file is not a valid image")
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	variants := make(map[string]string, len(tiers))
	for _, t := range tiers {
		w, h := fitDimensions(width, height, t.width, t.height)
		resized := imaging.Resize(src, w, h, imaging.Lanczos)
		name, err := p.writeDerivative(resized, t.name, base)
		if err != nil {
			return nil, fmt.Errorf("write %s derivative: %w", t.name, err)
		}
		variants[t.name] = name
	}

	return &domain.Image{
		OriginalPath:  p.publicURL(originalsDir, originalName),
		ThumbnailPath: p.publicURL("thumbnails", variants["thumbnails"]),
		MediumPath:    p.publicURL("medium", variants["medium"]),
		FullPath:      p.publicURL("full", variants["full"]),
		AltText:       altText,
		Width:         width,
		Height:        height,
	}, nil
}

// Delete removes every stored variant of img by basename, looked up in
// the respective storage subdirectories. Files already gone are
// skipped, so deleting the same image twice is safe.
func (p *Pipeline) Delete(img domain.Image) error {
	variants := map[string]string{
		originalsDir: img.OriginalPath,
		"thumbnails": img.ThumbnailPath,
		"medium":     img.MediumPath,
		"full":       img.FullPath,
	}
	for dir, publicPath := range variants {
		if publicPath == "" {
			continue
		}
		base := filepath.Base(publicPath)
		names := []string{base}
		if dir != originalsDir {
			// Derivative tiers carry a same-named JPEG fallback.
			names = append(names, strings.TrimSuffix(base, filepath.Ext(base))+".jpg")
		}
		for _, name := range names {
			if err := os.Remove(filepath.Join(p.baseDir, dir, name)); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s variant: %w", dir, err)
			}
		}
	}
	metrics.ImageDeletesTotal.Inc()
	return nil
}

func validate(upload Upload) (string, error) {
	if upload.Err != nil {
		return "", domain.NewValidationError("image", fmt.Sprintf("file upload error: %v", upload.Err))
	}
	if upload.Size > MaxUploadSize {
		return "", domain.NewValidationError("image", "file too large, maximum size is 10MB")
	}
	// Sniff the real content type; the filename extension and any
	// client-declared content type are not trusted.
	mtype := mimetype.Detect(upload.Data)
	ext, ok := allowedTypes[mtype.String()]
	if !ok {
		return "", domain.NewValidationError("image", "invalid file type, only JPEG, PNG, GIF, and WebP are allowed")
	}
	return ext, nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	return src, err
}

// fitDimensions scales src into the box preserving the aspect ratio.
// Both output dimensions are floor-rounded.
func fitDimensions(srcW, srcH, boxW, boxH int) (int, int) {
	ratio := math.Min(float64(boxW)/float64(srcW), float64(boxH)/float64(srcH))
	return int(float64(srcW) * ratio), int(float64(srcH) * ratio)
}

// writeDerivative encodes img into <dir>/<base>.webp and the JPEG
// fallback <dir>/<base>.jpg, returning the WEBP filename.
func (p *Pipeline) writeDerivative(img image.Image, dir, base string) (string, error) {
	webpName := base + ".webp"

	webpFile, err := os.Create(filepath.Join(p.baseDir, dir, webpName))
	if err != nil {
		return "", err
	}
	if err := webp.Encode(webpFile, img, &webp.Options{Quality: encodeQuality}); err != nil {
		webpFile.Close()
		return "", err
	}
	if err := webpFile.Close(); err != nil {
		return "", err
	}

	jpegFile, err := os.Create(filepath.Join(p.baseDir, dir, base+".jpg"))
	if err != nil {
		return "", err
	}
	if err := jpeg.Encode(jpegFile, img, &jpeg.Options{Quality: encodeQuality}); err != nil {
		jpegFile.Close()
		return "", err
	}
	return webpName, jpegFile.Close()
}

func (p *Pipeline) publicURL(dir, name string) string {
	return path.Join(p.publicPath, dir, name)
}
