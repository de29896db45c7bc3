package actor

import "errors"

// ErrTextureNotFound is returned by loaders when an asset does not exist
var ErrTextureNotFound = errors.New("texture not found")

// Texture is a handle owned by a rendering adapter
type Texture interface {
	Name() string
	Size() (width, height int)
}

// TextureLoader resolves texture names into handles
type TextureLoader interface {
	LoadTexture(name string) (Texture, error)
	Texture(name string) (Texture, bool)
}

// Renderer is the drawing side of a rendering adapter
type Renderer interface {
	DrawSprite(tex Texture, t Transform)
}
