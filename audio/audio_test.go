package audio_test

import (
	"testing"
	"time"

	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/audio"
	"github.com/plus3/actorgame/math2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTone(t *testing.T) {
	t.Run("stops after its duration", func(t *testing.T) {
		tone, err := audio.Tone(440, 10*time.Millisecond)
		require.NoError(t, err)

		samples := make([][2]float64, 1000)
		n, ok := tone.Stream(samples)
		assert.True(t, ok)
		assert.Equal(t, 441, n)

		for i := range n {
			assert.LessOrEqual(t, samples[i][0], 1.0)
			assert.GreaterOrEqual(t, samples[i][0], -1.0)
		}

		n, ok = tone.Stream(samples)
		assert.Equal(t, 0, n)
		assert.False(t, ok)
	})

	t.Run("frequency above nyquist", func(t *testing.T) {
		_, err := audio.Tone(44100, time.Millisecond)
		assert.Error(t, err)
	})
}

func TestCuesWithoutSpeaker(t *testing.T) {
	w := actor.NewWorld()
	cues := audio.NewCues(nil)
	cues.Attach(w)

	w.CreateShip(math2d.Zero())
	w.CreateAsteroid(math2d.Vec(1000, 1000), 0)

	w.PressKey(actor.KeyFire)
	w.SetDeltaTime(0.1)
	w.RunFrame()

	assert.Equal(t, 1, cues.Requested())

	// silent cues never touch the device
	cues.Close()
}
