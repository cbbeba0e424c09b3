// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/math32"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned when a texture file is not a known image type.
var ErrNotImage = errors.New("not an image file")

// Texture is an image applied to a surface. It uses an [image.RGBA]
// as the underlying image storage.
type Texture struct {

	// Name is the name of the texture.
	Name string

	// Transparent is whether the texture has transparency.
	Transparent bool

	// RGBA is the image data.
	RGBA *image.RGBA
}

// NewTexture returns a texture for the given image.
func NewTexture(name string, img image.Image) *Texture {
	tx := &Texture{Name: name, RGBA: imagex.AsRGBA(img)}
	tx.Transparent = hasAlpha(tx.RGBA)
	return tx
}

// Sample returns the texel at texture coordinates u, v with repeat
// wrapping, nearest filtering, and v = 1 at the top of the image.
func (tx *Texture) Sample(u, v float32) color.RGBA {
	b := tx.RGBA.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	u -= math32.Floor(u)
	v -= math32.Floor(v)
	x := min(int(u*float32(w)), w-1)
	y := min(int((1-v)*float32(h)), h-1)
	return tx.RGBA.RGBAAt(b.Min.X+x, b.Min.Y+y)
}

func hasAlpha(img *image.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A < 255 {
				return true
			}
		}
	}
	return false
}

// ProgressFunc is called as texture bytes are read; total is -1
// when the size is not known.
type ProgressFunc func(read, total int64)

// TextureResult is the outcome of an asynchronous texture load.
type TextureResult struct {
	Texture *Texture
	Err     error
}

// TextureOptions are the options for [LoadTextureFS].
type TextureOptions struct {

	// MaxSize limits the larger image dimension; larger images are
	// scaled down. Zero means no limit.
	MaxSize int

	// Progress, if set, receives read progress.
	Progress ProgressFunc
}

// LoadTexture loads a texture from the given file path.
func LoadTexture(ctx context.Context, name, path string, opts TextureOptions) (*Texture, error) {
	dir, file := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return LoadTextureFS(ctx, os.DirFS(dir), name, file, opts)
}

// LoadTextureFS loads a texture from the given file in fsys.
// The file type is sniffed before decoding, so files that are
// not images fail with [ErrNotImage].
func LoadTextureFS(ctx context.Context, fsys fs.FS, name, filename string, opts TextureOptions) (*Texture, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("xyz.LoadTexture %q: %w", filename, err)
	}
	defer f.Close()
	total := int64(-1)
	if st, err := f.Stat(); err == nil {
		total = st.Size()
	}
	buf, err := io.ReadAll(&progressReader{ctx: ctx, r: f, total: total, progress: opts.Progress})
	if err != nil {
		return nil, fmt.Errorf("xyz.LoadTexture %q: %w", filename, err)
	}
	if !filetype.IsImage(buf) {
		return nil, fmt.Errorf("xyz.LoadTexture %q: %w", filename, ErrNotImage)
	}
	img, _, err := imagex.Read(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("xyz.LoadTexture %q: %w", filename, err)
	}
	if opts.MaxSize > 0 {
		img = clampSize(img, opts.MaxSize)
	}
	return NewTexture(name, img), nil
}

// clampSize scales img down so that neither dimension exceeds max.
func clampSize(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}
	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// progressReader reports progress and stops when ctx is done.
type progressReader struct {
	ctx      context.Context
	r        io.Reader
	read     int64
	total    int64
	progress ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	if err := pr.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := pr.r.Read(p)
	pr.read += int64(n)
	if pr.progress != nil && n > 0 {
		pr.progress(pr.read, pr.total)
	}
	return n, err
}
