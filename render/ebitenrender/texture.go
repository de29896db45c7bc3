// Package ebitenrender draws a World with Ebitengine and feeds it keyboard input.
package ebitenrender

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/actorgame/actor"
)

// Texture is an ebiten image registered under a name
type Texture struct {
	name  string
	image *ebiten.Image
}

func (t *Texture) Name() string {
	return t.name
}

func (t *Texture) Size() (int, int) {
	b := t.image.Bounds()
	return b.Dx(), b.Dy()
}

func (t *Texture) Image() *ebiten.Image {
	return t.image
}

// TextureManager loads textures from a directory and caches them by name
type TextureManager struct {
	dir      string
	textures map[string]*Texture
}

func NewTextureManager(dir string) *TextureManager {
	return &TextureManager{
		dir:      dir,
		textures: make(map[string]*Texture),
	}
}

// LoadTexture reads <dir>/<name>. A missing file wraps actor.ErrTextureNotFound.
func (m *TextureManager) LoadTexture(name string) (actor.Texture, error) {
	if tex, ok := m.textures[name]; ok {
		return tex, nil
	}

	path := filepath.Join(m.dir, name)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, actor.ErrTextureNotFound)
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return m.Register(name, img), nil
}

func (m *TextureManager) Texture(name string) (actor.Texture, bool) {
	tex, ok := m.textures[name]
	if !ok {
		return nil, false
	}
	return tex, true
}

// Register stores img under name, replacing any earlier texture
func (m *TextureManager) Register(name string, img *ebiten.Image) *Texture {
	tex := &Texture{name: name, image: img}
	m.textures[name] = tex
	return tex
}

// Len returns the number of cached textures
func (m *TextureManager) Len() int {
	return len(m.textures)
}
