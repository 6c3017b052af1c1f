// Package snapshot writes rendered frames to PNG or BMP files.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gridcaster/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"
)

// Capture saves frames as timestamped PNG files in one directory.
type Capture struct {
	outputDir string
	prefix    string
	now       func() time.Time
	seq       int
}

// NewCapture creates a capture writing prefix_<timestamp>.png files into outputDir.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Save encodes img into the next free filename and returns its path.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.nextFilename()
	if err := WritePNG(filename, img); err != nil {
		return "", err
	}
	logger.Info("frame captured", zap.String("file", filename))
	return filename, nil
}

// nextFilename appends a sequence number when two captures share a second.
func (c *Capture) nextFilename() string {
	base := fmt.Sprintf("%s_%s", c.prefix, c.now().Format("2006-01-02_15-04-05"))
	name := base + ".png"
	for {
		path := name
		if c.outputDir != "" {
			path = filepath.Join(c.outputDir, name)
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		c.seq++
		name = fmt.Sprintf("%s_%d.png", base, c.seq)
	}
}

// WritePNG encodes img to path as PNG, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	return writeFile(path, img, "PNG", png.Encode)
}

// WriteImage picks the encoder from the file extension: .bmp writes a
// BMP, anything else a PNG.
func WriteImage(path string, img image.Image) error {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return writeFile(path, img, "BMP", bmp.Encode)
	}
	return WritePNG(path, img)
}

func writeFile(path string, img image.Image, format string, encode func(io.Writer, image.Image) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
