package transcoder

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// Transcoder downsizes images to fit within a pixel bound and re-encodes
// them as JPEG at a fixed quality. Output is deterministic for identical
// input bytes.
type Transcoder struct {
	maxWidth  int
	maxHeight int
	quality   int
}

// Result is the re-encoded image plus its final pixel dimensions.
type Result struct {
	Data   []byte
	Width  int
	Height int
	Format string
}

func New(maxWidth, maxHeight, quality int) *Transcoder {
	return &Transcoder{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		quality:   quality,
	}
}

// Transcode decodes data, scales it down so neither dimension exceeds the
// bound (never upsizing), and encodes the result as JPEG. Undecodable input
// is an error the caller must treat as per-file, not fatal.
func (t *Transcoder) Transcode(data []byte) (Result, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	targetW, targetH := fitWithin(width, height, t.maxWidth, t.maxHeight)

	if targetW != width || targetH != height {
		dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
		width, height = targetW, targetH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: t.quality}); err != nil {
		return Result{}, fmt.Errorf("encode jpeg: %w", err)
	}

	return Result{
		Data:   buf.Bytes(),
		Width:  width,
		Height: height,
		Format: "jpeg",
	}, nil
}

// fitWithin returns dimensions scaled down to fit maxW×maxH with aspect
// ratio preserved. Images already within the bound keep their size.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}

	outW, outH := maxW, h*maxW/w
	if outH > maxH {
		outW, outH = w*maxH/h, maxH
	}
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}
