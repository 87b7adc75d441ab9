package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *
var assetsFS embed.FS

// SampleRate is the rate of the shared audio context and of synthesized sounds.
const SampleRate = 44100

var audioContext *audio.Context

// Context returns the process-wide audio context, creating it on first use.
func Context() *audio.Context {
	if audioContext == nil {
		audioContext = audio.CurrentContext()
	}
	if audioContext == nil {
		audioContext = audio.NewContext(SampleRate)
	}
	return audioContext
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// FindAudio returns the first embedded encoding of name, trying .ogg then .wav.
func FindAudio(name string) (string, bool) {
	for _, ext := range []string{".ogg", ".wav"} {
		path := name + ext
		if _, err := assetsFS.Open(cleanAssetPath(path)); err == nil {
			return path, true
		}
	}
	return "", false
}

// decodeAudio returns a 16-bit stereo stream and its length in bytes.
func decodeAudio(path string, data []byte) (io.ReadSeeker, int64, error) {
	clean := strings.ToLower(cleanAssetPath(path))
	reader := bytes.NewReader(data)

	switch {
	case strings.HasSuffix(clean, ".ogg"):
		stream, err := vorbis.DecodeWithSampleRate(SampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("decode ogg %q: %w", path, err)
		}
		return stream, stream.Length(), nil
	case strings.HasSuffix(clean, ".wav"):
		stream, err := wav.DecodeWithSampleRate(SampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return stream, stream.Length(), nil
	}
	// already-decoded PCM in ebiten's native format
	return reader, int64(len(data)), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
