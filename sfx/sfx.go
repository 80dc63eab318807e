package sfx

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

const SampleRate = 44100

// Bank holds one synthesized blip per event kind and plays them as the
// stage reports events.
type Bank struct {
	ctx   *audio.Context
	clips map[obj.EventKind][]byte
	muted bool
}

// NewBank synthesizes a clip for every audio entry. ctx may be nil, in
// which case Play is a no-op.
func NewBank(ctx *audio.Context, specs []prefabs.AudioSpec) *Bank {
	b := &Bank{ctx: ctx, clips: make(map[obj.EventKind][]byte, len(specs))}
	b.Load(specs)
	return b
}

// Load replaces the clip set, e.g. after the prefab changed on disk.
func (b *Bank) Load(specs []prefabs.AudioSpec) {
	clear(b.clips)
	for _, s := range specs {
		if s.Frequency <= 0 || s.Duration <= 0 {
			log.Printf("sfx: skipping %q: frequency and duration must be positive", s.Event)
			continue
		}
		b.clips[obj.EventKind(s.Event)] = Square(SampleRate, s.Frequency, s.Duration, s.Volume)
	}
}

func (b *Bank) SetMuted(m bool) { b.muted = m }

// Play starts the clip of each event that has one.
func (b *Bank) Play(events []obj.Event) {
	if b.ctx == nil || b.muted {
		return
	}
	for _, e := range events {
		clip, ok := b.clips[e.Kind]
		if !ok {
			continue
		}
		b.ctx.NewPlayerFromBytes(clip).Play()
	}
}

// Square renders a square wave as 16-bit little-endian stereo PCM with a
// linear fade out.
func Square(sampleRate int, freq, dur, volume float64) []byte {
	n := int(float64(sampleRate) * dur)
	if n <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(volume, 1))
	out := make([]byte, n*4)
	period := float64(sampleRate) / freq
	for i := range n {
		v := volume
		if math.Mod(float64(i), period) >= period/2 {
			v = -v
		}
		v *= 1 - float64(i)/float64(n)
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
