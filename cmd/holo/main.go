// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command holo runs the 3D scene demo, rendering frames to a PNG
// directory and/or a live browser viewer.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"cogentcore.org/core/cli"
	"cogentcore.org/holo/config"
	"cogentcore.org/holo/holo"
	"cogentcore.org/holo/logx"
)

func main() {
	opts := cli.DefaultOptions("holo", "Holo renders an animated 3D scene on a flat or holographic display.")
	cli.Run(opts, config.New(), commands(os.Stdout)...)
}

// commands returns the holo commands, with show writing to out.
func commands(out io.Writer) []*cli.Cmd[*config.Config] {
	return []*cli.Cmd[*config.Config]{
		{
			Func: run,
			Name: "run",
			Doc:  "run the demo",
			Root: true,
		},
		{
			Func: func(cfg *config.Config) error {
				return show(out, cfg)
			},
			Name: "show",
			Doc:  "print the effective config as TOML or YAML",
		},
	}
}

func run(cfg *config.Config) error {
	logx.SetDefaultLogger()
	app, err := holo.NewApp(cfg)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return app.Run(ctx)
}

func show(out io.Writer, cfg *config.Config) error {
	b, err := cfg.Encode(cfg.Format)
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	return err
}
