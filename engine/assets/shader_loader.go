package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed shaders/*
var embedded embed.FS

// Shaders resolves shader names against the files built into the binary.
var Shaders fs.FS = mustSub(embedded, "shaders")

// ShadersFrom serves shaders from dir on disk, for iterating without rebuilding.
func ShadersFrom(dir string) fs.FS { return os.DirFS(dir) }

// LoadShader reads a GLSL file into a null-terminated string for OpenGL.
func LoadShader(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Strs
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
