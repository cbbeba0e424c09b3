// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package holo

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/holo/assets"
	"cogentcore.org/holo/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shaderDir copies the built-in shaders into a temporary directory.
func shaderDir(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, fs.WalkDir(assets.Shaders(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := fs.ReadFile(assets.Shaders(), path)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, path), b, 0o644)
	}))
	return dir
}

func TestLoadShaders(t *testing.T) {
	sh, err := LoadShaders(assets.Shaders())
	require.NoError(t, err)
	assert.False(t, sh.Basic.Raw)
	assert.True(t, sh.Raw.Raw)
	assert.Contains(t, sh.Raw.Vertex, "attribute vec3 position")
	assert.Contains(t, sh.Basic.Fragment, "uniform vec3 color")
}

func TestReloadShaders(t *testing.T) {
	dir := shaderDir(t)
	sh, err := LoadShaders(ShaderFS(dir))
	require.NoError(t, err)
	src := "uniform vec3 color;\nvoid main() { gl_FragColor = vec4(color * 0.5, 1.0); }\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, assets.BasicFragment), []byte(src), 0o644))
	require.NoError(t, sh.Reload(ShaderFS(dir)))
	assert.Equal(t, src, sh.Basic.Fragment)
	assert.Equal(t, 2, sh.Basic.Version)

	require.NoError(t, os.WriteFile(filepath.Join(dir, assets.RawFragment), []byte("broken"), 0o644))
	assert.Error(t, sh.Reload(ShaderFS(dir)))
	assert.Contains(t, sh.Raw.Fragment, "main", "invalid sources are not applied")
}

func TestWatchShaders(t *testing.T) {
	dir := shaderDir(t)
	sh, err := LoadShaders(ShaderFS(dir))
	require.NoError(t, err)
	lp := host.NewLoop(100)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go lp.Run(ctx)
	done := make(chan error, 1)
	go func() { done <- WatchShaders(ctx, dir, lp, sh) }()

	src := "void main() { gl_Position = vec4(0.0); }\n"
	version := func() int {
		v := 0
		if lp.RunOnLoop(ctx, func() { v = sh.Raw.Version }) != nil {
			return -1
		}
		return v
	}
	assert.Eventually(t, func() bool {
		// rewrite until the watcher is running and sees it
		os.WriteFile(filepath.Join(dir, assets.RawVertex), []byte(src), 0o644)
		return version() > 1
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
