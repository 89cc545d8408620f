package shader

import (
	"fmt"
	"io/fs"
	"os"
)

// Load reads both stage sources from disk and builds a Program from them.
// Unless WithName is given the program is named after the two paths.
func Load(b Backend, vertexPath, fragmentPath string, opts ...Option) (*Program, error) {
	return load(b, os.ReadFile, vertexPath, fragmentPath, opts)
}

// LoadFS is Load for sources inside fsys, e.g. an embed.FS.
func LoadFS(b Backend, fsys fs.FS, vertexPath, fragmentPath string, opts ...Option) (*Program, error) {
	read := func(name string) ([]byte, error) { return fs.ReadFile(fsys, name) }
	return load(b, read, vertexPath, fragmentPath, opts)
}

func load(b Backend, read func(string) ([]byte, error), vertexPath, fragmentPath string, opts []Option) (*Program, error) {
	vert, err := read(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("read vertex source %q: %w", vertexPath, err)
	}
	frag, err := read(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("read fragment source %q: %w", fragmentPath, err)
	}

	opts = append([]Option{WithName(vertexPath + "+" + fragmentPath)}, opts...)
	p, err := New(b, string(vert), string(frag), opts...)
	if err != nil {
		return nil, fmt.Errorf("build %s+%s: %w", vertexPath, fragmentPath, err)
	}
	return p, nil
}
