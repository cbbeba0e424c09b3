// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrNoMain is returned for shader sources without a main function.
var ErrNoMain = errors.New("shader source has no main function")

// ShaderProgram is a vertex and fragment shader source pair with its
// uniforms. Raw programs get no engine-provided prelude, so they must
// declare their own matrices and attributes.
type ShaderProgram struct {

	// Name is the name of the program, for logging.
	Name string

	// Raw is whether this is a raw program without prelude.
	Raw bool

	// Vertex is the vertex shader source.
	Vertex string

	// Fragment is the fragment shader source.
	Fragment string

	// Uniforms are the uniform values by name.
	Uniforms map[string]any

	// Version is incremented each time the sources change.
	Version int
}

// NewShaderProgram returns a program with the given sources, which
// must each have a main function.
func NewShaderProgram(name string, raw bool, vertex, fragment string) (*ShaderProgram, error) {
	sp := &ShaderProgram{Name: name, Raw: raw, Uniforms: map[string]any{}}
	if err := sp.SetSources(vertex, fragment); err != nil {
		return nil, err
	}
	return sp, nil
}

// SetSources replaces both sources after checking them. On error the
// previous sources are kept.
func (sp *ShaderProgram) SetSources(vertex, fragment string) error {
	if !strings.Contains(vertex, "main") {
		return fmt.Errorf("xyz.ShaderProgram %q vertex: %w", sp.Name, ErrNoMain)
	}
	if !strings.Contains(fragment, "main") {
		return fmt.Errorf("xyz.ShaderProgram %q fragment: %w", sp.Name, ErrNoMain)
	}
	sp.Vertex = vertex
	sp.Fragment = fragment
	sp.Version++
	return nil
}

// SetUniform sets the value of a uniform.
func (sp *ShaderProgram) SetUniform(name string, v any) *ShaderProgram {
	if sp.Uniforms == nil {
		sp.Uniforms = map[string]any{}
	}
	sp.Uniforms[name] = v
	return sp
}

// UniformColor returns the named uniform if it is a color.
func (sp *ShaderProgram) UniformColor(name string) (color.RGBA, bool) {
	c, ok := sp.Uniforms[name].(color.RGBA)
	return c, ok
}
