// Package swizzle expands a YAML manifest into the named swizzle functions
// of pkg/vector and renders them as Go source.
package swizzle

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyManifest  = errors.New("manifest has no groups")
	ErrInvalidGroup   = errors.New("invalid swizzle group")
	ErrInvalidPattern = errors.New("invalid swizzle pattern")
	ErrDuplicate      = errors.New("duplicate swizzle")
)

type Manifest struct {
	Package string  `yaml:"package"`
	Groups  []Group `yaml:"groups"`
}

// Group either enumerates every pattern over Axes for each of Lengths,
// or lists Patterns explicitly. Generic groups accept Vec2 and Vec3 and so
// may not read z.
type Group struct {
	Name     string   `yaml:"name"`
	Generic  bool     `yaml:"generic"`
	Axes     string   `yaml:"axes"`
	Lengths  []int    `yaml:"lengths"`
	Require  string   `yaml:"require"`
	Patterns []string `yaml:"patterns"`
}

func LoadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyManifest
		}
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if m.Package == "" {
		m.Package = "vector"
	}
	if len(m.Groups) == 0 {
		return nil, ErrEmptyManifest
	}
	return &m, nil
}

// Expand returns the functions of every group in manifest order.
func (m *Manifest) Expand() ([]Func, error) {
	seen := make(map[string]string)
	var funcs []Func

	for _, g := range m.Groups {
		patterns, err := g.patterns()
		if err != nil {
			return nil, err
		}
		for _, p := range patterns {
			f, err := newFunc(p, g.Generic)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", g.Name, err)
			}
			if prev, ok := seen[f.Name]; ok {
				return nil, fmt.Errorf("%w: %s in %q and %q", ErrDuplicate, f.Name, prev, g.Name)
			}
			seen[f.Name] = g.Name
			funcs = append(funcs, f)
		}
	}
	return funcs, nil
}

func (g Group) patterns() ([]string, error) {
	if len(g.Patterns) > 0 {
		if g.Axes != "" || len(g.Lengths) > 0 {
			return nil, fmt.Errorf("%w: %q mixes patterns with axes", ErrInvalidGroup, g.Name)
		}
		return g.Patterns, nil
	}
	if g.Axes == "" || len(g.Lengths) == 0 {
		return nil, fmt.Errorf("%w: %q needs axes and lengths", ErrInvalidGroup, g.Name)
	}

	var out []string
	for _, n := range g.Lengths {
		if n != 2 && n != 3 {
			return nil, fmt.Errorf("%w: %q length %d", ErrInvalidGroup, g.Name, n)
		}
		for _, p := range enumerate(g.Axes, n) {
			if g.Require != "" && !strings.ContainsAny(p, g.Require) {
				continue
			}
			out = append(out, p)
		}
	}
	return out, nil
}

// enumerate lists every string of length n over axes in lexical order of
// the axes string.
func enumerate(axes string, n int) []string {
	if n == 0 {
		return []string{""}
	}
	var out []string
	for _, prefix := range enumerate(axes, n-1) {
		for i := 0; i < len(axes); i++ {
			out = append(out, prefix+axes[i:i+1])
		}
	}
	return out
}
