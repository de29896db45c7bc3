// Package termrender draws a World into a terminal with tcell.
package termrender

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/actorgame/actor"
)

// Glyph is a terminal texture: one styled cell. Directional glyphs pick their rune
// from the sprite's heading, split into len(Runes) sectors starting at +X.
type Glyph struct {
	name  string
	Runes []rune
	Style tcell.Style
}

func NewGlyph(name string, style tcell.Style, runes ...rune) *Glyph {
	return &Glyph{name: name, Runes: runes, Style: style}
}

func (g *Glyph) Name() string {
	return g.name
}

func (g *Glyph) Size() (int, int) {
	return 1, 1
}

// RuneFor returns the rune facing rotation
func (g *Glyph) RuneFor(rotation float64) rune {
	if len(g.Runes) == 0 {
		return '?'
	}
	if len(g.Runes) == 1 {
		return g.Runes[0]
	}

	sector := 2 * math.Pi / float64(len(g.Runes))
	turns := math.Mod(rotation, 2*math.Pi)
	if turns < 0 {
		turns += 2 * math.Pi
	}
	idx := int(math.Floor(turns/sector+0.5)) % len(g.Runes)
	return g.Runes[idx]
}

// GlyphSet is a TextureLoader backed by registered glyphs
type GlyphSet struct {
	glyphs map[string]*Glyph
}

func NewGlyphSet(glyphs ...*Glyph) *GlyphSet {
	s := &GlyphSet{glyphs: make(map[string]*Glyph)}
	for _, g := range glyphs {
		s.glyphs[g.name] = g
	}
	return s
}

// DefaultGlyphs returns glyphs for the ship, laser and asteroid textures.
// Screen y grows downwards, so a heading of +π/2 points down.
func DefaultGlyphs() *GlyphSet {
	return NewGlyphSet(
		NewGlyph(actor.ShipTexture, tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true), '>', 'v', '<', '^'),
		NewGlyph(actor.LaserTexture, tcell.StyleDefault.Foreground(tcell.ColorRed), '-', '\\', '|', '/', '-', '\\', '|', '/'),
		NewGlyph(actor.AsteroidTexture, tcell.StyleDefault.Foreground(tcell.ColorGray), '@'),
	)
}

func (s *GlyphSet) LoadTexture(name string) (actor.Texture, error) {
	g, ok := s.glyphs[name]
	if !ok {
		return nil, fmt.Errorf("glyph %s: %w", name, actor.ErrTextureNotFound)
	}
	return g, nil
}

func (s *GlyphSet) Texture(name string) (actor.Texture, bool) {
	g, ok := s.glyphs[name]
	if !ok {
		return nil, false
	}
	return g, true
}
