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

// Package image provides a packed 24-bit RGB raster and its PNG codec.
//
// The core type is RGB: a row-major byte buffer of exactly
// width*height*3 bytes, three bytes (R, G, B) per pixel and no padding
// between rows. Rows are therefore contiguous and can be handed directly
// to the hwy lane routines.
//
// # Codec
//
// Decode and Encode move an RGB between a PNG file and memory:
//
//	img, err := image.Decode("input.png") // any PNG, converted to RGB
//	if err != nil {
//	    return err // *image.DecodeError
//	}
//	defer img.Release()
//
//	// ... mutate img.Pix() in place ...
//
//	err = image.Encode("output.png", img) // 8-bit truecolour PNG
//
// Alpha is dropped on decode. Encode always writes colour type 2 (RGB,
// 8 bits per sample) and overwrites any existing file.
package image
