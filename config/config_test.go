// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/tomlx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, name, content string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 600, c.Height)
	assert.Equal(t, 60.0, c.FPS)
	assert.Equal(t, float32(0.6), c.SpinRate)
	assert.Equal(t, float32(0.064), c.EyeSeparation)
	assert.Equal(t, 1024, c.MaxTextureSize)
	assert.Equal(t, 1, c.SaveEvery)
	assert.Equal(t, "toml", c.Format)
	assert.False(t, c.Holographic)
	assert.NoError(t, c.Validate())
}

func TestOpenTOML(t *testing.T) {
	fn := writeFile(t, "holo.toml", `
holographic = true
width = 1280
spin_rate = 1.5
out_dir = "frames"
`)
	c := New()
	require.NoError(t, tomlx.Open(c, fn))
	assert.True(t, c.Holographic)
	assert.Equal(t, 1280, c.Width)
	assert.Equal(t, 600, c.Height, "unset values keep their defaults")
	assert.Equal(t, float32(1.5), c.SpinRate)
	assert.Equal(t, "frames", c.OutDir)
}

func TestValidate(t *testing.T) {
	c := New()
	c.Width = 0
	c.RenderScale = 2
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size")
	assert.Contains(t, err.Error(), "render scale")

	c = New()
	c.WatchShaders = true
	assert.Error(t, c.Validate())
	c.ShaderDir = "shaders"
	assert.NoError(t, c.Validate())
}

func TestOnConfig(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	c := New()
	c.OutDir = "~/frames"
	c.ShaderDir = "shaders"
	require.NoError(t, c.OnConfig("run"))
	assert.Equal(t, filepath.Join(home, "frames"), c.OutDir)
	assert.Equal(t, "shaders", c.ShaderDir)
}

func TestTOMLRoundTrip(t *testing.T) {
	c := New()
	c.Holographic = true
	c.Listen = ":9000"
	b, err := c.TOML()
	require.NoError(t, err)
	assert.Contains(t, string(b), "holographic = true")
	assert.NotContains(t, string(b), "format")
	got := New()
	require.NoError(t, toml.Unmarshal(b, got))
	assert.Equal(t, c, got)
}

func TestEncode(t *testing.T) {
	c := New()
	c.Frames = 10
	b, err := c.Encode("yaml")
	require.NoError(t, err)
	assert.Contains(t, string(b), "frames: 10")
	got := New()
	require.NoError(t, yaml.Unmarshal(b, got))
	assert.Equal(t, c, got)

	b, err = c.Encode("toml")
	require.NoError(t, err)
	assert.Contains(t, string(b), "frames = 10")

	_, err = c.Encode("json")
	assert.Error(t, err)
}
