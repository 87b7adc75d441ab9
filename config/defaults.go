package config

import _ "embed"

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in settings, matching default.yaml.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  640,
			Height: 360,
			Scale:  2,
			Title:  "Jump Don't Die",
			TPS:    60,
		},
		Physics: PhysicsConfig{
			Gravity:            -10,
			VelocityIterations: 6,
			PositionIterations: 2,
			PixelsInMeter:      90,
		},
		Player: PlayerConfig{
			Speed:          8,
			JumpImpulse:    20,
			FallMultiplier: 1.15,
			Density:        3,
		},
		Game: GameConfig{
			DeathDelay:   1.5,
			CameraFollow: 150,
			Level:        "default.yaml",
		},
		Audio: AudioConfig{
			MusicVolume: 0.75,
			SFXVolume:   1,
		},
		Storage: StorageConfig{Path: "~/.jumpdontdie/scores.db"},
		Log:     LogConfig{File: "~/.jumpdontdie/game.log"},
	}
}

// fillZero copies defaults into fields a partial YAML file left empty.
func fillZero(cfg *Config) {
	def := Default()
	setInt(&cfg.Window.Width, def.Window.Width)
	setInt(&cfg.Window.Height, def.Window.Height)
	setInt(&cfg.Window.Scale, def.Window.Scale)
	setInt(&cfg.Window.TPS, def.Window.TPS)
	if cfg.Window.Title == "" {
		cfg.Window.Title = def.Window.Title
	}
	setFloat(&cfg.Physics.Gravity, def.Physics.Gravity)
	setInt(&cfg.Physics.VelocityIterations, def.Physics.VelocityIterations)
	setInt(&cfg.Physics.PositionIterations, def.Physics.PositionIterations)
	setFloat(&cfg.Physics.PixelsInMeter, def.Physics.PixelsInMeter)
	setFloat(&cfg.Player.Speed, def.Player.Speed)
	setFloat(&cfg.Player.JumpImpulse, def.Player.JumpImpulse)
	setFloat(&cfg.Player.FallMultiplier, def.Player.FallMultiplier)
	setFloat(&cfg.Player.Density, def.Player.Density)
	setFloat(&cfg.Game.DeathDelay, def.Game.DeathDelay)
	setFloat(&cfg.Game.CameraFollow, def.Game.CameraFollow)
	if cfg.Game.Level == "" {
		cfg.Game.Level = def.Game.Level
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = def.Storage.Path
	}
	if cfg.Log.File == "" {
		cfg.Log.File = def.Log.File
	}
}

func setInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}

func setFloat(dst *float64, def float64) {
	if *dst == 0 {
		*dst = def
	}
}
