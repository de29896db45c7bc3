package actor_test

import (
	"github.com/plus3/actorgame/actor"
)

type fakeTexture struct {
	name          string
	width, height int
}

func (t *fakeTexture) Name() string     { return t.name }
func (t *fakeTexture) Size() (int, int)     { return t.width, t.height }

// fakeLoader knows every texture name except the ones listed in missing
type fakeLoader struct {
	missing map[string]bool
	cache   map[string]actor.Texture
	loads   int
}

func newFakeLoader(missing ...string) *fakeLoader {
	l := &fakeLoader{
		missing: make(map[string]bool),
		cache:   make(map[string]actor.Texture),
	}
	for _, name := range missing {
		l.missing[name] = true
	}
	return l
}

func (l *fakeLoader) LoadTexture(name string) (actor.Texture, error) {
	l.loads++
	if l.missing[name] {
		return nil, actor.ErrTextureNotFound
	}
	tex := &fakeTexture{name: name, width: 32, height: 16}
	l.cache[name] = tex
	return tex, nil
}

func (l *fakeLoader) Texture(name string) (actor.Texture, bool) {
	tex, ok := l.cache[name]
	return tex, ok
}

type drawCall struct {
	texture   string
	transform actor.Transform
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawSprite(tex actor.Texture, t actor.Transform) {
	r.calls = append(r.calls, drawCall{texture: tex.Name(), transform: t})
}

func (r *recordingRenderer) textures() []string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.texture
	}
	return names
}

// probe counts lifecycle calls
type probe struct {
	actor.Base
	started int
	updates int
	lastDt  float64
}

func (p *probe) Kind() actor.Kind { return actor.KindCircle }

func (p *probe) Start() { p.started++ }

func (p *probe) Update(dt float64) {
	p.updates++
	p.lastDt = dt
}

// spawner attaches child to its owner during its first update
type spawner struct {
	actor.Base
	child actor.Component
	done  bool
}

func (s *spawner) Kind() actor.Kind { return actor.KindMove }

func (s *spawner) Update(float64) {
	if s.done {
		return
	}
	s.done = true
	s.Owner().AddComponent(s.child)
}
