package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	DefaultMaxWidth = 1280
	DefaultQuality  = 80
)

// Compressed is the result of re-encoding one photo: raw JPEG bytes for
// object storage and an inline data URL for the local strategy.
type Compressed struct {
	Data    []byte
	DataURL string
	Width   int
	Height  int
}

// Compress decodes a JPEG or PNG photo, scales it down proportionally when
// wider than maxWidth (never upscales), and re-encodes it as JPEG at the
// given quality (1-100).
func Compress(data []byte, maxWidth, quality int) (*Compressed, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxWidth {
		scale := float64(maxWidth) / float64(width)
		width = maxWidth
		height = int(float64(bounds.Dy())*scale + 0.5)
		if height < 1 {
			height = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}

	encoded := buf.Bytes()
	return &Compressed{
		Data:    encoded,
		DataURL: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(encoded),
		Width:   width,
		Height:  height,
	}, nil
}
