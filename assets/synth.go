package assets

import (
	"encoding/binary"
	"math"
)

// Note is one step of a synthesized melody. A zero Freq is a rest.
type Note struct {
	Freq     float64
	Duration float64
}

const synthAmplitude = 0.3

// Sweep renders a tone gliding from one frequency to another as 16-bit
// little-endian stereo PCM.
func Sweep(from, to, duration float64) []byte {
	n := sampleCount(duration)
	out := make([]byte, 0, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := from + (to-from)*t
		phase += 2 * math.Pi * freq / SampleRate
		out = appendSample(out, math.Sin(phase)*envelope(t))
	}
	return out
}

// Melody renders notes back to back as 16-bit little-endian stereo PCM.
func Melody(notes []Note) []byte {
	total := 0
	for _, n := range notes {
		total += sampleCount(n.Duration)
	}
	out := make([]byte, 0, total*4)
	for _, note := range notes {
		n := sampleCount(note.Duration)
		for i := 0; i < n; i++ {
			v := 0.0
			if note.Freq > 0 {
				ts := float64(i) / SampleRate
				// square-ish: fundamental plus a soft third harmonic
				v = math.Sin(2*math.Pi*note.Freq*ts) + math.Sin(6*math.Pi*note.Freq*ts)/3
				v *= envelope(float64(i) / float64(n))
			}
			out = appendSample(out, v)
		}
	}
	return out
}

func sampleCount(duration float64) int {
	if duration <= 0 {
		return 0
	}
	return int(duration * SampleRate)
}

// envelope fades in over the first 5% and out over the last 30%.
func envelope(t float64) float64 {
	switch {
	case t < 0.05:
		return t / 0.05
	case t > 0.7:
		return (1 - t) / 0.3
	default:
		return 1
	}
}

func appendSample(out []byte, v float64) []byte {
	v = math.Max(-1, math.Min(1, v*synthAmplitude))
	s := uint16(int16(v * math.MaxInt16))
	out = binary.LittleEndian.AppendUint16(out, s)
	return binary.LittleEndian.AppendUint16(out, s)
}

var songNotes = []Note{
	{523.25, 0.2}, {659.25, 0.2}, {783.99, 0.2}, {659.25, 0.2},
	{587.33, 0.2}, {698.46, 0.2}, {880.00, 0.2}, {0, 0.2},
	{523.25, 0.2}, {659.25, 0.2}, {783.99, 0.2}, {1046.5, 0.2},
	{987.77, 0.2}, {783.99, 0.2}, {659.25, 0.2}, {0, 0.2},
}

// synthesize returns a fallback clip for the named sound.
func synthesize(name string) []byte {
	switch name {
	case "jump":
		return Sweep(440, 880, 0.12)
	case "die":
		return Sweep(320, 70, 0.5)
	case "song":
		return Melody(songNotes)
	default:
		return Sweep(660, 660, 0.1)
	}
}
