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
	"bufio"
	"errors"
	"fmt"
	stdimage "image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// DecodeError reports a file that could not be read as a PNG: missing,
// unreadable, corrupt, or of zero size.
type DecodeError struct {
	Path string // empty when decoding from a reader
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("image: decode: %v", e.Err)
	}
	return fmt.Sprintf("image: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode reads the PNG file at path and converts it to 24-bit RGB.
// All failures are returned as *DecodeError.
func Decode(path string) (*RGB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, err := DecodeReader(bufio.NewReader(f))
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return img, nil
}

// DecodeReader reads a PNG stream and converts it to 24-bit RGB.
// All failures are returned as *DecodeError.
func DecodeReader(r io.Reader) (*RGB, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	img, err := FromImage(src)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}

// FromImage converts any image.Image to a packed RGB raster. Alpha is
// discarded: non-premultiplied colour components are kept as they are.
func FromImage(src stdimage.Image) (*RGB, error) {
	b := src.Bounds()
	dst, err := NewRGB(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	switch s := src.(type) {
	case *stdimage.NRGBA:
		for y := 0; y < dst.height; y++ {
			in := s.Pix[s.PixOffset(b.Min.X, b.Min.Y+y):]
			copyRGBFrom4(dst.Row(y), in)
		}
	case *stdimage.RGBA:
		// image/png only produces *RGBA for opaque truecolour, where
		// premultiplied and straight components coincide.
		if !s.Opaque() {
			convertGeneric(dst, src)
			break
		}
		for y := 0; y < dst.height; y++ {
			in := s.Pix[s.PixOffset(b.Min.X, b.Min.Y+y):]
			copyRGBFrom4(dst.Row(y), in)
		}
	case *stdimage.Gray:
		for y := 0; y < dst.height; y++ {
			in := s.Pix[s.PixOffset(b.Min.X, b.Min.Y+y):]
			row := dst.Row(y)
			for x := 0; x < dst.width; x++ {
				v := in[x]
				row[3*x], row[3*x+1], row[3*x+2] = v, v, v
			}
		}
	default:
		convertGeneric(dst, src)
	}
	return dst, nil
}

// copyRGBFrom4 packs the first three bytes of every 4-byte pixel of src
// into dst, until dst is full.
func copyRGBFrom4(dst, src []byte) {
	for i, j := 0, 0; i < len(dst); i, j = i+3, j+4 {
		dst[i], dst[i+1], dst[i+2] = src[j], src[j+1], src[j+2]
	}
}

func convertGeneric(dst *RGB, src stdimage.Image) {
	b := src.Bounds()
	for y := 0; y < dst.height; y++ {
		row := dst.Row(y)
		for x := 0; x < dst.width; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			row[3*x], row[3*x+1], row[3*x+2] = c.R, c.G, c.B
		}
	}
}
