// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets contains the built-in shader sources and texture.
package assets

import (
	"embed"
	"io/fs"
)

// Shader source file names.
const (
	BasicVertex   = "vert-basic.vert"
	BasicFragment = "frag-basic.frag"
	RawVertex     = "vert-raw.vert"
	RawFragment   = "frag-raw.frag"
)

// TextureFile is the name of the built-in texture in [Content].
const TextureFile = "texture.png"

// Content contains the built-in texture and the shaders directory.
//
//go:embed texture.png shaders
var Content embed.FS

// Shaders returns the built-in shader sources.
func Shaders() fs.FS {
	sub, err := fs.Sub(Content, "shaders")
	if err != nil {
		panic(err)
	}
	return sub
}
