// Package audio plays short generated cues for World events.
package audio

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/actorgame/actor"
)

const sampleRate = beep.SampleRate(44100)

// Cue frequencies and lengths
const (
	LaserFrequency     = 880.0
	LaserDuration      = 50 * time.Millisecond
	ExplosionFrequency = 110.0
	ExplosionDuration  = 150 * time.Millisecond
)

// Cues turns World events into sounds. Without an initialized speaker every cue is a no-op.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	requested   int
	logger      *log.Logger
}

func NewCues(logger *log.Logger) *Cues {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Cues{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. A failure leaves the cues silent; the game keeps running.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		c.logger.Printf("audio disabled: %v", err)
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences every playing cue
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Attach subscribes the cues to w's events
func (c *Cues) Attach(w *actor.World) {
	actor.Subscribe(w, func(actor.LaserFired) {
		c.play(LaserFrequency, LaserDuration)
	})
	actor.Subscribe(w, func(actor.AsteroidDestroyed) {
		c.play(ExplosionFrequency, ExplosionDuration)
	})
}

// Requested returns how many cues were triggered, played or not
func (c *Cues) Requested() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requested
}

func (c *Cues) play(freq float64, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requested++
	if !c.initialized {
		return
	}

	tone, err := Tone(freq, d)
	if err != nil {
		c.logger.Printf("cue %.0fHz: %v", freq, err)
		return
	}

	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// Tone returns a sine wave at freq Hz that ends after d
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	return beep.Take(sampleRate.N(d), sine), nil
}
