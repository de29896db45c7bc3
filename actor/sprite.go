package actor

// SpriteComponent draws a texture at its owner's transform. The texture is resolved
// once at construction; when it is missing the sprite stays attached but never draws.
type SpriteComponent struct {
	Base
	textureName string
	drawOrder   int
	texture     Texture
}

// NewSpriteComponent creates a sprite and resolves its texture through loader.
// A nil loader or a failed load leaves the sprite without a texture.
func NewSpriteComponent(textureName string, drawOrder int, loader TextureLoader) *SpriteComponent {
	return &SpriteComponent{
		textureName: textureName,
		drawOrder:   drawOrder,
		texture:     resolveTexture(loader, textureName),
	}
}

func resolveTexture(loader TextureLoader, name string) Texture {
	if loader == nil {
		return nil
	}
	if tex, ok := loader.Texture(name); ok {
		return tex
	}
	tex, err := loader.LoadTexture(name)
	if err != nil {
		return nil
	}
	return tex
}

func (s *SpriteComponent) Kind() Kind { return KindSprite }

func (s *SpriteComponent) Update(float64) {}

func (s *SpriteComponent) Sprite() *SpriteComponent {
	return s
}

func (s *SpriteComponent) TextureName() string {
	return s.textureName
}

func (s *SpriteComponent) DrawOrder() int {
	return s.drawOrder
}

func (s *SpriteComponent) SetDrawOrder(order int) {
	s.drawOrder = order
}

// Texture returns the resolved texture or nil
func (s *SpriteComponent) Texture() Texture {
	return s.texture
}

func (s *SpriteComponent) HasTexture() bool {
	return s.texture != nil
}

// TextureSize returns the texture dimensions, or zeros without a texture
func (s *SpriteComponent) TextureSize() (int, int) {
	if s.texture == nil {
		return 0, 0
	}
	return s.texture.Size()
}

// Draw hands the texture and the owner's transform to r
func (s *SpriteComponent) Draw(r Renderer) {
	if r == nil || s.texture == nil {
		return
	}
	owner := s.Owner()
	if owner == nil {
		return
	}
	r.DrawSprite(s.texture, owner.Transform())
}
