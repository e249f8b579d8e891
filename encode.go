// File: encode.go
package captcha

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"github.com/pkg/errors"
)

const dataURIPrefix = "data:image/png;base64,"

var pngEncoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// EncodePNG serializes img losslessly.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := pngEncoder.Encode(&buf, img); err != nil {
		return nil, errors.Wrapf(ErrEncode, "png: %v", err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64 returns the standard base64 form of data.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DataURI wraps PNG bytes for direct use in an <img src>.
func DataURI(data []byte) string {
	return dataURIPrefix + EncodeBase64(data)
}
