package assets

import (
	"encoding/binary"
	"testing"
)

func TestSweepLength(t *testing.T) {
	cases := []struct {
		name     string
		duration float64
		want     int
	}{
		{"tenth", 0.1, 4410 * 4},
		{"zero", 0, 0},
		{"negative", -1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := len(Sweep(440, 880, c.duration)); got != c.want {
				t.Fatalf("len = %d, want %d", got, c.want)
			}
		})
	}
}

func TestMelodyRestIsSilent(t *testing.T) {
	pcm := Melody([]Note{{Freq: 0, Duration: 0.05}})
	if len(pcm) == 0 {
		t.Fatalf("rest should still take time")
	}
	for i := 0; i < len(pcm); i += 2 {
		if v := binary.LittleEndian.Uint16(pcm[i:]); v != 0 {
			t.Fatalf("sample %d = %d, want silence", i/2, v)
		}
	}
}

func TestSynthesizedClipsStayInRange(t *testing.T) {
	for _, name := range SoundNames {
		t.Run(name, func(t *testing.T) {
			pcm := synthesize(name)
			if len(pcm) == 0 || len(pcm)%4 != 0 {
				t.Fatalf("clip length %d is not whole stereo frames", len(pcm))
			}
			for i := 0; i < len(pcm); i += 4 {
				l := int16(binary.LittleEndian.Uint16(pcm[i:]))
				r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
				if l != r {
					t.Fatalf("frame %d not mono-in-stereo: %d/%d", i/4, l, r)
				}
			}
		})
	}
}

func TestCleanAssetPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"jump.ogg", "jump.ogg"},
		{"assets/jump.ogg", "jump.ogg"},
		{"/home/me/game/assets/song.wav", "song.wav"},
		{"/tmp/die.ogg", "die.ogg"},
	}
	for _, c := range cases {
		if got := cleanAssetPath(c.in); got != c.want {
			t.Errorf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFindAudioMissing(t *testing.T) {
	if _, ok := FindAudio("no-such-clip"); ok {
		t.Fatalf("expected no embedded clip")
	}
}
