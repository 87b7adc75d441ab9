package assets

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/jumpdontdie/config"
	"github.com/milk9111/jumpdontdie/logging"
	"go.uber.org/multierr"
)

// SoundNames lists every clip the game plays, in load order.
var SoundNames = []string{"die", "jump", "song"}

const musicName = "song"

// Sounds is the game's sound bank. Clips come from embedded ogg/wav files
// when present and are synthesized otherwise.
type Sounds struct {
	cfg     config.AudioConfig
	players map[string]*audio.Player
}

func NewSounds(cfg config.AudioConfig) *Sounds {
	return &Sounds{cfg: cfg, players: make(map[string]*audio.Player)}
}

// Load prepares one named clip. Loading an already loaded clip is a no-op.
func (s *Sounds) Load(name string) error {
	if _, ok := s.players[name]; ok {
		return nil
	}

	var (
		stream io.ReadSeeker
		length int64
		source = "synth"
	)
	if path, ok := FindAudio(name); ok {
		data, err := LoadFile(path)
		if err != nil {
			return fmt.Errorf("assets: load %s: %w", path, err)
		}
		stream, length, err = decodeAudio(path, data)
		if err != nil {
			return fmt.Errorf("assets: %w", err)
		}
		source = path
	} else {
		pcm := synthesize(name)
		stream, length = bytes.NewReader(pcm), int64(len(pcm))
	}

	var src io.Reader = stream
	if name == musicName {
		src = audio.NewInfiniteLoop(stream, length)
	}
	player, err := Context().NewPlayer(src)
	if err != nil {
		return fmt.Errorf("assets: player for %s: %w", name, err)
	}
	player.SetVolume(s.volume(name))
	s.players[name] = player
	logging.Log.Debugw("sound loaded", "name", name, "source", source)
	return nil
}

// LoadAll loads every clip in SoundNames.
func (s *Sounds) LoadAll() error {
	for _, name := range SoundNames {
		if err := s.Load(name); err != nil {
			return err
		}
	}
	return nil
}

// Play restarts a clip from the beginning. Unknown names are ignored.
func (s *Sounds) Play(name string) {
	p, ok := s.players[name]
	if !ok || s.cfg.Mute {
		return
	}
	if err := p.Rewind(); err != nil {
		logging.Log.Warnw("rewind sound", "name", name, "err", err)
		return
	}
	p.SetVolume(s.volume(name))
	p.Play()
}

// Stop pauses a clip and rewinds it.
func (s *Sounds) Stop(name string) {
	p, ok := s.players[name]
	if !ok {
		return
	}
	p.Pause()
	if err := p.Rewind(); err != nil {
		logging.Log.Warnw("rewind sound", "name", name, "err", err)
	}
}

// StopAll silences every clip.
func (s *Sounds) StopAll() {
	for name := range s.players {
		s.Stop(name)
	}
}

func (s *Sounds) volume(name string) float64 {
	if name == musicName {
		return s.cfg.MusicVolume
	}
	return s.cfg.SFXVolume
}

func (s *Sounds) Close() error {
	var err error
	for name, p := range s.players {
		err = multierr.Append(err, p.Close())
		delete(s.players, name)
	}
	return err
}
