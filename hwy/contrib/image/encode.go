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
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zlib"
)

// pngSignature starts every PNG stream.
const pngSignature = "\x89PNG\r\n\x1a\n"

const (
	colorTypeTruecolor = 2
	filterNone         = 0

	// idatChunkSize bounds each IDAT chunk.
	idatChunkSize = 1 << 16
)

// ErrEmptyImage is returned when encoding a nil or released image.
var ErrEmptyImage = errors.New("image: empty image")

// EncodeError reports a PNG that could not be written: the path is not
// writable, the disk failed, or the image is empty.
type EncodeError struct {
	Path string // empty when encoding to a writer
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("image: encode: %v", e.Err)
	}
	return fmt.Sprintf("image: encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

type encodeConfig struct {
	level int
}

// EncodeOption configures Encode and EncodeWriter.
type EncodeOption func(*encodeConfig)

// WithCompressionLevel sets the zlib level for the IDAT stream, from
// zlib.HuffmanOnly (-2) to zlib.BestCompression (9). The default is
// zlib.BestSpeed.
func WithCompressionLevel(level int) EncodeOption {
	return func(c *encodeConfig) {
		c.level = level
	}
}

// Encode writes img to path as an 8-bit truecolour PNG, replacing any
// existing file. On failure the partial file is removed and the error is
// returned as *EncodeError.
func Encode(path string, img *RGB, opts ...EncodeOption) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &EncodeError{Path: path, Err: cerr}
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := EncodeWriter(w, img, opts...); err != nil {
		var ee *EncodeError
		if errors.As(err, &ee) {
			ee.Path = path
		}
		return err
	}
	if err := w.Flush(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

// EncodeWriter writes img to w as an 8-bit truecolour PNG.
// All failures are returned as *EncodeError.
func EncodeWriter(w io.Writer, img *RGB, opts ...EncodeOption) error {
	cfg := encodeConfig{level: zlib.BestSpeed}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := encodePNG(w, img, cfg); err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

func encodePNG(w io.Writer, img *RGB, cfg encodeConfig) error {
	if img == nil || img.Released() {
		return ErrEmptyImage
	}
	if img.width > math.MaxInt32 || img.height > math.MaxInt32 {
		return fmt.Errorf("%w: %dx%d exceeds PNG limits", ErrInvalidDimensions, img.width, img.height)
	}

	if _, err := io.WriteString(w, pngSignature); err != nil {
		return err
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(img.width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(img.height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = colorTypeTruecolor
	ihdr[10] = 0 // compression: deflate
	ihdr[11] = 0 // filter method: adaptive
	ihdr[12] = 0 // interlace: none
	if err := writeChunk(w, "IHDR", ihdr[:]); err != nil {
		return err
	}

	idat := &idatWriter{w: w, buf: make([]byte, idatChunkSize)}
	zw, err := zlib.NewWriterLevel(idat, cfg.level)
	if err != nil {
		return err
	}
	filter := []byte{filterNone}
	for y := 0; y < img.height; y++ {
		if _, err := zw.Write(filter); err != nil {
			return err
		}
		if _, err := zw.Write(img.Row(y)); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	if err := idat.flush(); err != nil {
		return err
	}

	return writeChunk(w, "IEND", nil)
}

// writeChunk writes one PNG chunk: length, type, data and CRC-32 of type
// and data.
func writeChunk(w io.Writer, typ string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], uint32(len(data)))
	copy(header[4:], typ)

	crc := crc32.NewIEEE()
	crc.Write(header[4:])
	crc.Write(data)

	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := w.Write(footer[:])
	return err
}

// idatWriter splits the compressed stream into IDAT chunks of at most
// len(buf) bytes.
type idatWriter struct {
	w   io.Writer
	buf []byte
	n   int
}

func (iw *idatWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		k := copy(iw.buf[iw.n:], p)
		iw.n += k
		written += k
		p = p[k:]
		if iw.n == len(iw.buf) {
			if err := iw.flush(); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

func (iw *idatWriter) flush() error {
	if iw.n == 0 {
		return nil
	}
	err := writeChunk(iw.w, "IDAT", iw.buf[:iw.n])
	iw.n = 0
	return err
}
