package display

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Surface receives finished frames
type Surface interface {
	Commit(fb *renderer.Framebuffer) error
}

// PNGFile writes each committed frame to Path, creating parent directories
type PNGFile struct {
	Path string
}

// NewPNGFile creates a surface that saves to path
func NewPNGFile(path string) *PNGFile {
	return &PNGFile{Path: path}
}

func (p *PNGFile) Commit(fb *renderer.Framebuffer) error {
	if err := os.MkdirAll(filepath.Dir(p.Path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := png.Encode(file, fb.Image()); err != nil {
		file.Close()
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}

// Memory keeps a copy of the last committed frame
type Memory struct {
	mu     sync.Mutex
	width  int
	height int
	pixels []byte
	frames int
}

// NewMemory creates an empty in-memory surface
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Commit(fb *renderer.Framebuffer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.width = fb.Width()
	m.height = fb.Height()
	m.pixels = append(m.pixels[:0], fb.Bytes()...)
	m.frames++
	return nil
}

// Pixels returns a copy of the last frame's RGBA bytes and its dimensions
func (m *Memory) Pixels() ([]byte, int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.pixels...), m.width, m.height
}

// Frames returns the number of commits so far
func (m *Memory) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

// EncodePNG returns fb encoded as PNG
func EncodePNG(fb *renderer.Framebuffer) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.Image()); err != nil {
		return nil, fmt.Errorf("error encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}
