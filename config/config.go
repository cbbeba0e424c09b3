// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct for holo, set from
// `default:` tags, a TOML config file and command line flags.
package config

import (
	"bytes"
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the main config struct that contains all of the
// configuration options for holo.
type Config struct {

	// Holographic selects the stereo display backend and viewpoint.
	Holographic bool `toml:"holographic" yaml:"holographic"`

	// Width is the display width in pixels.
	Width int `default:"800" toml:"width" yaml:"width"`

	// Height is the display height in pixels.
	Height int `default:"600" toml:"height" yaml:"height"`

	// FPS is the frame rate of the host loop.
	FPS float64 `default:"60" toml:"fps" yaml:"fps"`

	// Frames stops the program after this many frames; 0 runs until
	// interrupted.
	Frames int `toml:"frames" yaml:"frames"`

	// RenderScale renders the flat view at this fraction of the display
	// size and scales it up.
	RenderScale float32 `default:"1" toml:"render_scale" yaml:"render_scale"`

	// FrameSpin rotates by a fixed 0.01 radians per frame instead of
	// by SpinRate times the elapsed time.
	FrameSpin bool `toml:"frame_spin" yaml:"frame_spin"`

	// SpinRate is the rotation speed of the cube and tetrahedron in
	// radians per second.
	SpinRate float32 `default:"0.6" toml:"spin_rate" yaml:"spin_rate"`

	// EyeSeparation is the distance between the stereo eyes.
	EyeSeparation float32 `default:"0.064" toml:"eye_separation" yaml:"eye_separation"`

	// Texture is the path of the cube texture; empty uses the
	// built-in texture.
	Texture string `toml:"texture" yaml:"texture"`

	// MaxTextureSize limits the texture size in pixels.
	MaxTextureSize int `default:"1024" toml:"max_texture_size" yaml:"max_texture_size"`

	// ShaderDir is the directory of the shader sources; empty uses
	// the built-in shaders.
	ShaderDir string `toml:"shader_dir" yaml:"shader_dir"`

	// WatchShaders reloads the shaders when files in ShaderDir change.
	WatchShaders bool `toml:"watch_shaders" yaml:"watch_shaders"`

	// OutDir, if set, is where rendered frames are saved as PNG files.
	OutDir string `flag:"o,out" toml:"out_dir" yaml:"out_dir"`

	// SaveEvery saves only every n-th frame to OutDir.
	SaveEvery int `default:"1" toml:"save_every" yaml:"save_every"`

	// Listen, if set, is the address to serve the live viewer on.
	Listen string `flag:"l,listen" toml:"listen" yaml:"listen"`

	// Format is the output format of the show command: toml or yaml.
	Format string `cmd:"show" default:"toml" toml:"-" yaml:"-"`
}

// Defaults sets the values from the `default:` field tags.
func (c *Config) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(c))
}

// New returns a config with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// OnConfig is called after the config file and flags have been applied.
func (c *Config) OnConfig(cmd string) error {
	return c.ExpandPaths()
}

// ExpandPaths expands a leading ~ in all of the path fields.
func (c *Config) ExpandPaths() error {
	for _, p := range []*string{&c.Texture, &c.ShaderDir, &c.OutDir} {
		ex, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		*p = ex
	}
	return nil
}

// Validate checks that the values are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %g must be positive", c.FPS))
	}
	if c.RenderScale <= 0 || c.RenderScale > 1 {
		errs = append(errs, fmt.Errorf("render scale %g must be in (0, 1]", c.RenderScale))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames %d must not be negative", c.Frames))
	}
	if c.EyeSeparation < 0 {
		errs = append(errs, fmt.Errorf("eye separation %g must not be negative", c.EyeSeparation))
	}
	if c.WatchShaders && c.ShaderDir == "" {
		errs = append(errs, errors.New("watch shaders needs a shader dir"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// TOML returns the config encoded as TOML.
func (c *Config) TOML() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// YAML returns the config encoded as YAML.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Encode returns the config encoded in the given format,
// which is toml or yaml.
func (c *Config) Encode(format string) ([]byte, error) {
	switch format {
	case "toml", "":
		return c.TOML()
	case "yaml", "yml":
		return c.YAML()
	}
	return nil, fmt.Errorf("config: unknown format %q", format)
}
