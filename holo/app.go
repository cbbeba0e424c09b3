// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package holo

import (
	"context"
	"log/slog"

	"cogentcore.org/holo/assets"
	"cogentcore.org/holo/config"
	"cogentcore.org/holo/display"
	"cogentcore.org/holo/host"
	"cogentcore.org/holo/render"
	"cogentcore.org/holo/stream"
	"cogentcore.org/holo/xyz"
	"golang.org/x/sync/errgroup"
)

// App is the whole program: the world, the host loop and the driver,
// the display backend, and the optional frame sinks.
type App struct {
	Config  *config.Config
	World   *World
	Shaders *Shaders
	Loop    *host.Loop
	Driver  *Driver
	Backend display.Backend

	// Hub serves the live viewer; it is nil unless Config.Listen is set.
	Hub *stream.Hub

	// LoadTexture loads the cube texture; it defaults to loading
	// Config.Texture, or the built-in texture if that is empty.
	LoadTexture func(ctx context.Context) (*xyz.Texture, error)
}

// NewApp builds the app for the config.
func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sh, err := LoadShaders(ShaderFS(cfg.ShaderDir))
	if err != nil {
		return nil, err
	}
	w, err := Build(cfg, sh)
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, World: w, Shaders: sh}
	a.Loop = host.NewLoop(cfg.FPS)
	a.Backend = display.New(cfg.Holographic, cfg.Width, cfg.Height, render.NewRaster())
	if fl, ok := a.Backend.(*display.Flat); ok {
		fl.RenderScale = cfg.RenderScale
	}
	a.Driver = NewDriver(w, a.Loop, a.Backend)
	if cfg.OutDir != "" {
		a.Driver.Sinks = append(a.Driver.Sinks, display.NewPNGDir(cfg.OutDir, cfg.SaveEvery))
	}
	if cfg.Listen != "" {
		a.Hub = stream.NewHub()
		a.Driver.Sinks = append(a.Driver.Sinks, a.Hub)
	}
	a.LoadTexture = a.loadTexture
	return a, nil
}

func (a *App) loadTexture(ctx context.Context) (*xyz.Texture, error) {
	opts := xyz.TextureOptions{
		MaxSize: a.Config.MaxTextureSize,
		Progress: func(read, total int64) {
			slog.Debug("holo: loading texture", "read", read, "total", total)
		},
	}
	if a.Config.Texture == "" {
		return xyz.LoadTextureFS(ctx, assets.Content, "texture", assets.TextureFile, opts)
	}
	return xyz.LoadTexture(ctx, "texture", a.Config.Texture, opts)
}

// ApplyTexture applies the result of the texture load and starts the
// driver, whether the load succeeded or not. It must be called on the
// loop goroutine.
func (a *App) ApplyTexture(res xyz.TextureResult) {
	if res.Err != nil {
		slog.Warn("holo: texture not loaded, using vertex colors", "err", res.Err)
	} else {
		a.World.SetTexture(res.Texture)
	}
	a.Driver.Start()
}

// Run runs the app until ctx is done, or until Config.Frames frames
// have been rendered. The texture loads concurrently with the loop,
// and its completion starts the frames.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if n := a.Config.Frames; n > 0 {
		prev := a.Driver.OnFrame
		a.Driver.OnFrame = func(i int, pk Pick) {
			if prev != nil {
				prev(i, pk)
			}
			if i+1 >= n {
				cancel()
			}
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Loop.Run(ctx)
	})
	g.Go(func() error {
		tex, err := a.LoadTexture(ctx)
		res := xyz.TextureResult{Texture: tex, Err: err}
		a.Loop.Post(func() {
			a.ApplyTexture(res)
		})
		return nil
	})
	if a.Config.WatchShaders {
		g.Go(func() error {
			return WatchShaders(ctx, a.Config.ShaderDir, a.Loop, a.Shaders)
		})
	}
	if a.Hub != nil {
		g.Go(func() error {
			return a.Hub.ListenAndServe(ctx, a.Config.Listen)
		})
	}
	err := g.Wait()
	st := a.Driver.Stats()
	slog.Info("holo: stopped", "frames", st.Frames, "elapsed", st.Elapsed)
	return err
}
