package domain

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

// ImageFormat is an embeddable raster format.
type ImageFormat string

// Embeddable image formats.
const (
	ImagePNG  ImageFormat = "PNG"
	ImageJPEG ImageFormat = "JPG"
)

// SignatureImage is a decoded signature ready for embedding.
type SignatureImage struct {
	Data   []byte
	Format ImageFormat
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegMagic = []byte{0xff, 0xd8, 0xff}
)

// DecodeSignature decodes a base64 signature, accepting both bare base64
// and data URLs ("data:image/png;base64,..."). The format is taken from the
// image bytes, not the declared media type, and the whole image must decode.
func DecodeSignature(encoded string) (*SignatureImage, error) {
	payload := strings.TrimSpace(encoded)
	if strings.HasPrefix(payload, "data:") {
		header, body, ok := strings.Cut(payload, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("%w: data URL is not base64", ErrInvalidSignature)
		}
		payload = body
	}
	if payload == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSignature)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	var format ImageFormat
	switch {
	case bytes.HasPrefix(data, pngMagic):
		format = ImagePNG
	case bytes.HasPrefix(data, jpegMagic):
		format = ImageJPEG
	default:
		return nil, fmt.Errorf("%w: not a PNG or JPEG image", ErrInvalidSignature)
	}

	// A valid header says nothing about the pixel data behind it.
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidSignature)
	}
	return &SignatureImage{Data: data, Format: format}, nil
}
