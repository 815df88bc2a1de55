package domain

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSignature(t *testing.T) {
	sample := SampleSignature()
	bare := strings.TrimPrefix(sample, "data:image/png;base64,")
	jpg := base64.StdEncoding.EncodeToString(testJPEG(t))

	raw, err := base64.StdEncoding.DecodeString(bare)
	require.NoError(t, err)
	headerOnly := base64.StdEncoding.EncodeToString(append(append([]byte{}, raw[:8]...), []byte("not image data")...))
	truncated := base64.StdEncoding.EncodeToString(raw[:len(raw)/2])
	jpegHeader := base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10})

	tests := []struct {
		name    string
		in      string
		format  ImageFormat
		wantErr bool
	}{
		{name: "data url", in: sample, format: ImagePNG},
		{name: "bare base64", in: bare, format: ImagePNG},
		{name: "surrounding space", in: "  " + bare + "\n", format: ImagePNG},
		{name: "unpadded", in: strings.TrimRight(bare, "="), format: ImagePNG},
		{name: "jpeg", in: jpg, format: ImageJPEG},
		{name: "declared type ignored", in: "data:image/jpeg;base64," + bare, format: ImagePNG},
		{name: "empty", in: "", wantErr: true},
		{name: "empty data url", in: "data:image/png;base64,", wantErr: true},
		{name: "not base64 data url", in: "data:image/png," + bare, wantErr: true},
		{name: "missing comma", in: "data:image/png;base64", wantErr: true},
		{name: "garbage", in: "!!!not base64!!!", wantErr: true},
		{name: "not an image", in: base64.StdEncoding.EncodeToString([]byte("hello world")), wantErr: true},
		{name: "png header with broken body", in: headerOnly, wantErr: true},
		{name: "truncated png", in: truncated, wantErr: true},
		{name: "jpeg header only", in: jpegHeader, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeSignature(tt.in)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSignature)
				assert.Nil(t, img)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.format, img.Format)
			assert.NotEmpty(t, img.Data)
		})
	}
}

func TestSampleSignature_Stable(t *testing.T) {
	assert.Equal(t, SampleSignature(), SampleSignature())
}

func testJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 16, 8)), nil))
	return buf.Bytes()
}
