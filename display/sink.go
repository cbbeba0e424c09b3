// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/iox/imagex"
)

// Sink receives rendered frames. The image is only valid during
// the call, so sinks must copy or encode it before returning.
type Sink interface {
	WriteFrame(n int, img *image.RGBA) error
}

// PNGDir is a [Sink] that saves every Every-th frame as a numbered
// PNG file in Dir.
type PNGDir struct {

	// Dir is the directory the files are written to; it is created
	// on the first write.
	Dir string

	// Every is the frame interval; values below 1 save every frame.
	Every int

	made bool
}

// NewPNGDir returns a sink writing to the given directory.
func NewPNGDir(dir string, every int) *PNGDir {
	return &PNGDir{Dir: dir, Every: every}
}

// Filename returns the path of the file for frame n.
func (pd *PNGDir) Filename(n int) string {
	return filepath.Join(pd.Dir, fmt.Sprintf("frame-%06d.png", n))
}

func (pd *PNGDir) WriteFrame(n int, img *image.RGBA) error {
	if pd.Every > 1 && n%pd.Every != 0 {
		return nil
	}
	if !pd.made {
		if err := os.MkdirAll(pd.Dir, 0o755); err != nil {
			return fmt.Errorf("display.PNGDir: %w", err)
		}
		pd.made = true
	}
	if err := imagex.Save(img, pd.Filename(n)); err != nil {
		return fmt.Errorf("display.PNGDir: frame %d: %w", n, err)
	}
	return nil
}
