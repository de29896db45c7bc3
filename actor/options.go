package actor

import "log"

// Option configures a World
type Option func(*World)

// WithConfig replaces the whole configuration
func WithConfig(cfg Config) Option {
	return func(w *World) {
		w.config = cfg
	}
}

// WithSeed seeds the World's random source
func WithSeed(seed uint64) Option {
	return func(w *World) {
		w.config.Seed = seed
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithTextures sets the loader used by the factories to resolve sprite textures
func WithTextures(loader TextureLoader) Option {
	return func(w *World) {
		w.textures = loader
	}
}

// WithCollisionRule appends a rule after the ones already registered
func WithCollisionRule(rule CollisionRule) Option {
	return func(w *World) {
		w.rules = append(w.rules, rule)
	}
}

// WithCollisionRules replaces the registered rules, including the defaults
func WithCollisionRules(rules ...CollisionRule) Option {
	return func(w *World) {
		w.rules = append([]CollisionRule(nil), rules...)
	}
}
