// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package image

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// BytesPerPixel is the number of bytes per RGB pixel.
const BytesPerPixel = 3

var (
	// ErrInvalidDimensions is returned for non-positive or overflowing sizes.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrBufferSize is returned when a pixel slice does not hold exactly
	// width*height*3 bytes.
	ErrBufferSize = errors.New("image: pixel buffer size mismatch")
)

// RGB is a packed 24-bit raster with contiguous rows.
//
// An RGB exclusively owns its pixel slice. Its length is always
// width*height*3; every constructor enforces this, so code receiving an
// *RGB may rely on it without checking.
type RGB struct {
	pix    []byte
	width  int
	height int
}

// bufferLen returns width*height*3, or an error if the dimensions are not
// positive or the product overflows int.
func bufferLen(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/BytesPerPixel/height {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	return width * height * BytesPerPixel, nil
}

// NewRGB allocates a zeroed (black) image with the specified dimensions.
func NewRGB(width, height int) (*RGB, error) {
	n, err := bufferLen(width, height)
	if err != nil {
		return nil, err
	}
	return &RGB{
		pix:    make([]byte, n),
		width:  width,
		height: height,
	}, nil
}

// FromPix wraps an existing pixel slice. The image takes ownership of pix;
// the caller must not use it afterwards.
func FromPix(pix []byte, width, height int) (*RGB, error) {
	n, err := bufferLen(width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != n {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d", ErrBufferSize, len(pix), n, width, height)
	}
	return &RGB{pix: pix, width: width, height: height}, nil
}

// Width returns the image width in pixels.
func (img *RGB) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *RGB) Height() int {
	return img.height
}

// Stride returns the number of bytes per row (width*3, no padding).
func (img *RGB) Stride() int {
	return img.width * BytesPerPixel
}

// Len returns the number of bytes in the pixel buffer.
func (img *RGB) Len() int {
	return len(img.pix)
}

// Pix returns the whole pixel buffer, row-major.
func (img *RGB) Pix() []byte {
	return img.pix
}

// Row returns a mutable slice for the specified row.
// Returns nil for out-of-range rows or a released image.
func (img *RGB) Row(y int) []byte {
	if y < 0 || y >= img.height || img.pix == nil {
		return nil
	}
	stride := img.Stride()
	start := y * stride
	return img.pix[start : start+stride : start+stride]
}

// Rows returns the bytes of rows [y0, y1) as one contiguous slice.
func (img *RGB) Rows(y0, y1 int) []byte {
	y0 = max(y0, 0)
	y1 = min(y1, img.height)
	if y0 >= y1 || img.pix == nil {
		return nil
	}
	stride := img.Stride()
	return img.pix[y0*stride : y1*stride : y1*stride]
}

// At returns the colour at position (x, y), or black when out of bounds.
func (img *RGB) At(x, y int) (r, g, b uint8) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.pix == nil {
		return 0, 0, 0
	}
	i := (y*img.width + x) * BytesPerPixel
	return img.pix[i], img.pix[i+1], img.pix[i+2]
}

// Set sets the colour at position (x, y). Out-of-bounds writes are ignored.
func (img *RGB) Set(x, y int, r, g, b uint8) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.pix == nil {
		return
	}
	i := (y*img.width + x) * BytesPerPixel
	img.pix[i], img.pix[i+1], img.pix[i+2] = r, g, b
}

// Fill sets all pixels to the specified colour.
func (img *RGB) Fill(r, g, b uint8) {
	for i := 0; i+2 < len(img.pix); i += BytesPerPixel {
		img.pix[i], img.pix[i+1], img.pix[i+2] = r, g, b
	}
}

// Clone creates a deep copy of the image.
func (img *RGB) Clone() *RGB {
	return &RGB{
		pix:    bytes.Clone(img.pix),
		width:  img.width,
		height: img.height,
	}
}

// Equal reports whether both images have the same dimensions and bytes.
func (img *RGB) Equal(other *RGB) bool {
	if img == nil || other == nil {
		return img == other
	}
	return img.width == other.width && img.height == other.height && bytes.Equal(img.pix, other.pix)
}

// Release drops the pixel buffer. The image then reports zero size.
// Calling Release multiple times is safe.
func (img *RGB) Release() {
	if img == nil {
		return
	}
	img.pix = nil
	img.width = 0
	img.height = 0
}

// Released reports whether Release has been called.
func (img *RGB) Released() bool {
	return img.pix == nil
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Bounds returns the bounding rectangle of the image.
func (img *RGB) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}
