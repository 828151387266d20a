package upload

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

const jpegQuality = 90

// downscale shrinks JPEG and PNG images whose longer side exceeds maxDim,
// keeping the aspect ratio and the original format. Anything else,
// including images already small enough, is returned unchanged.
func downscale(data []byte, maxDim int) ([]byte, bool, error) {
	if maxDim <= 0 {
		return data, false, nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		// Not an image we handle.
		return data, false, nil
	}
	if format != "jpeg" && format != "png" {
		return data, false, nil
	}
	if cfg.Width <= maxDim && cfg.Height <= maxDim {
		return data, false, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", format, err)
	}
	scaled := resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality})
	case "png":
		err = png.Encode(&buf, scaled)
	}
	if err != nil {
		return nil, false, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), true, nil
}
