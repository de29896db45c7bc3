// Package raylibrender draws a World with raylib.
package raylibrender

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/actorgame/actor"
)

// Texture is a GPU texture loaded by raylib
type Texture struct {
	name    string
	texture rl.Texture2D
}

func (t *Texture) Name() string {
	return t.name
}

func (t *Texture) Size() (int, int) {
	return int(t.texture.Width), int(t.texture.Height)
}

// TextureCache loads textures from a directory once. Loading needs an open window.
type TextureCache struct {
	dir      string
	textures map[string]*Texture
}

func NewTextureCache(dir string) *TextureCache {
	return &TextureCache{
		dir:      dir,
		textures: make(map[string]*Texture),
	}
}

func (c *TextureCache) LoadTexture(name string) (actor.Texture, error) {
	if tex, ok := c.textures[name]; ok {
		return tex, nil
	}

	path := filepath.Join(c.dir, name)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, actor.ErrTextureNotFound)
	}

	texture := rl.LoadTexture(path)
	if !rl.IsTextureValid(texture) {
		return nil, fmt.Errorf("load %s: invalid texture", path)
	}

	tex := &Texture{name: name, texture: texture}
	c.textures[name] = tex
	return tex, nil
}

func (c *TextureCache) Texture(name string) (actor.Texture, bool) {
	tex, ok := c.textures[name]
	if !ok {
		return nil, false
	}
	return tex, true
}

// RegisterPlaceholders generates flat shapes for the gameplay textures missing on disk
func (c *TextureCache) RegisterPlaceholders() []string {
	var generated []string
	for _, name := range []string{actor.ShipTexture, actor.LaserTexture, actor.AsteroidTexture} {
		if _, err := c.LoadTexture(name); err == nil {
			continue
		}

		var img *rl.Image
		switch name {
		case actor.ShipTexture:
			size := int(actor.ShipRadius * 2)
			img = rl.GenImageColor(size, size, color.RGBA{})
			rl.ImageDrawTriangle(img,
				rl.NewVector2(float32(size), float32(size)/2),
				rl.NewVector2(0, 0),
				rl.NewVector2(0, float32(size)),
				color.RGBA{179, 229, 252, 255})
		case actor.LaserTexture:
			img = rl.GenImageColor(24, 4, color.RGBA{255, 179, 186, 255})
		default:
			size := int(actor.AsteroidRadius * 2)
			img = rl.GenImageColor(size, size, color.RGBA{})
			rl.ImageDrawCircle(img, int32(size/2), int32(size/2), int32(size/2-1), color.RGBA{169, 169, 169, 255})
		}

		c.textures[name] = &Texture{name: name, texture: rl.LoadTextureFromImage(img)}
		rl.UnloadImage(img)
		generated = append(generated, name)
	}
	return generated
}

// Unload releases every cached texture
func (c *TextureCache) Unload() {
	for name, tex := range c.textures {
		rl.UnloadTexture(tex.texture)
		delete(c.textures, name)
	}
}

// Renderer draws sprites with DrawTexturePro between BeginDrawing and EndDrawing
type Renderer struct{}

func (Renderer) DrawSprite(tex actor.Texture, t actor.Transform) {
	texture, ok := tex.(*Texture)
	if !ok {
		return
	}

	w, h := float32(texture.texture.Width), float32(texture.texture.Height)
	dw, dh := w*float32(t.Scale.X), h*float32(t.Scale.Y)

	rl.DrawTexturePro(
		texture.texture,
		rl.NewRectangle(0, 0, w, h),
		rl.NewRectangle(float32(t.Position.X), float32(t.Position.Y), dw, dh),
		rl.NewVector2(dw/2, dh/2),
		float32(t.Rotation*180/math.Pi),
		rl.White,
	)
}

// Bindings maps raylib key codes to game keys
var Bindings = map[int32]actor.Key{
	rl.KeyW:     actor.KeyForward,
	rl.KeyUp:    actor.KeyForward,
	rl.KeyS:     actor.KeyBackward,
	rl.KeyDown:  actor.KeyBackward,
	rl.KeyA:     actor.KeyTurnLeft,
	rl.KeyLeft:  actor.KeyTurnLeft,
	rl.KeyD:     actor.KeyTurnRight,
	rl.KeyRight: actor.KeyTurnRight,
	rl.KeySpace: actor.KeyFire,
}

// PollKeys syncs the World's pressed keys with the keyboard state
func PollKeys(w *actor.World) {
	held := Held(Bindings, rl.IsKeyDown)
	for _, k := range held.Slice() {
		if !w.PressedKeys().Has(k) {
			w.PressKey(k)
		}
	}
	for _, k := range w.PressedKeys().Slice() {
		if !held.Has(k) {
			w.ReleaseKey(k)
		}
	}
}

// Held returns the game keys with at least one bound physical key down
func Held(bindings map[int32]actor.Key, down func(int32) bool) actor.KeySet {
	var keys actor.KeySet
	for code, k := range bindings {
		if down(code) {
			keys = keys.With(k)
		}
	}
	return keys
}

// DrawHUD prints the actor count and frame rate
func DrawHUD(w *actor.World, score int) {
	rl.DrawText(fmt.Sprintf("score %d  actors %d", score, w.Len()), 8, 8, 20, rl.RayWhite)
	rl.DrawFPS(8, 32)
}
