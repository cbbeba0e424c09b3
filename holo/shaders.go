// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package holo

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/holo/assets"
	"cogentcore.org/holo/host"
	"cogentcore.org/holo/xyz"
	"github.com/fsnotify/fsnotify"
)

// Shaders are the shader programs used by the scene.
type Shaders struct {

	// Basic is the program with the standard prelude.
	Basic *xyz.ShaderProgram

	// Raw is the program without prelude.
	Raw *xyz.ShaderProgram
}

// sources holds the four shader source files.
type sources struct {
	basicVert, basicFrag, rawVert, rawFrag string
}

func readSources(fsys fs.FS) (*sources, error) {
	var src sources
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{assets.BasicVertex, &src.basicVert},
		{assets.BasicFragment, &src.basicFrag},
		{assets.RawVertex, &src.rawVert},
		{assets.RawFragment, &src.rawFrag},
	} {
		b, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, fmt.Errorf("holo: reading shader: %w", err)
		}
		*f.dst = string(b)
	}
	return &src, nil
}

// LoadShaders loads the shader programs from fsys.
func LoadShaders(fsys fs.FS) (*Shaders, error) {
	src, err := readSources(fsys)
	if err != nil {
		return nil, err
	}
	sh := &Shaders{}
	if sh.Basic, err = xyz.NewShaderProgram("basic", false, src.basicVert, src.basicFrag); err != nil {
		return nil, err
	}
	if sh.Raw, err = xyz.NewShaderProgram("raw", true, src.rawVert, src.rawFrag); err != nil {
		return nil, err
	}
	return sh, nil
}

// ShaderFS returns the directory to load shaders from, or the built-in
// shaders if dir is empty.
func ShaderFS(dir string) fs.FS {
	if dir == "" {
		return assets.Shaders()
	}
	return os.DirFS(dir)
}

// apply sets the sources of both programs, keeping the old sources of
// a program whose new sources are invalid.
func (sh *Shaders) apply(src *sources) error {
	return errors.Join(sh.Basic.SetSources(src.basicVert, src.basicFrag),
		sh.Raw.SetSources(src.rawVert, src.rawFrag))
}

// Reload reads the shader sources from fsys and applies them.
// It must be called on the loop goroutine.
func (sh *Shaders) Reload(fsys fs.FS) error {
	src, err := readSources(fsys)
	if err != nil {
		return err
	}
	return sh.apply(src)
}

// WatchShaders reloads the shaders when a shader file in dir changes,
// until ctx is done. Sources are read on the watching goroutine and
// applied on the loop.
func WatchShaders(ctx context.Context, dir string, lp *host.Loop, sh *Shaders) error {
	wt, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("holo: shader watcher: %w", err)
	}
	defer wt.Close()
	if err := wt.Add(dir); err != nil {
		return fmt.Errorf("holo: shader watcher: %w", err)
	}
	fsys := os.DirFS(dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-wt.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !isShaderFile(filepath.Base(ev.Name)) {
				continue
			}
			src, err := readSources(fsys)
			if errors.Log(err) != nil {
				continue
			}
			slog.Info("holo: reloading shaders", "file", ev.Name)
			lp.Post(func() {
				errors.Log(sh.apply(src))
			})
		case err, ok := <-wt.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

func isShaderFile(name string) bool {
	switch name {
	case assets.BasicVertex, assets.BasicFragment, assets.RawVertex, assets.RawFragment:
		return true
	}
	return false
}
