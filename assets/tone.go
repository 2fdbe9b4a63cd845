// Package assets produces the audio cues the game plays. Cues are synthesized
// from prefabs tone specs instead of decoded from files.
package assets

import (
	"encoding/binary"
	"math"

	"github.com/milk9111/jetsquare/common"
	"github.com/milk9111/jetsquare/prefabs"
)

// BytesPerFrame is one 16-bit little-endian stereo sample pair.
const BytesPerFrame = 4

// Synthesize renders tone as 16-bit signed little-endian stereo PCM.
func Synthesize(sampleRate int, tone prefabs.ToneSpec) []byte {
	if sampleRate <= 0 || tone.Duration <= 0 {
		return nil
	}

	frames := int(tone.Duration * float64(sampleRate))
	out := make([]byte, frames*BytesPerFrame)
	end := tone.EndFrequency
	if end <= 0 {
		end = tone.Frequency
	}

	phase := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		progress := float32(i) / float32(frames)
		freq := float64(common.Lerp(float32(tone.Frequency), float32(end), progress))
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase) * Envelope(t, tone) * tone.Volume
		s := int16(clampUnit(v) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*BytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*BytesPerFrame+2:], uint16(s))
	}
	return out
}

// Envelope is a linear attack to full level followed by a linear release to
// silence at the end of the tone.
func Envelope(t float64, tone prefabs.ToneSpec) float64 {
	if t < 0 || t >= tone.Duration {
		return 0
	}
	if tone.Attack > 0 && t < tone.Attack {
		return float64(common.Lerp(0, 1, float32(t/tone.Attack)))
	}
	release := tone.Duration - tone.Attack
	if release <= 0 {
		return 1
	}
	return float64(common.Lerp(1, 0, float32((t-tone.Attack)/release)))
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
