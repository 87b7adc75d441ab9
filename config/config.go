// Package config loads the game's tuning and runtime settings.
package config

// Config is the full set of settings read from YAML.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Game    GameConfig    `yaml:"game"`
	Audio   AudioConfig   `yaml:"audio"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	VelocityIterations int     `yaml:"velocity_iterations"`
	PositionIterations int     `yaml:"position_iterations"`
	PixelsInMeter      float64 `yaml:"pixels_in_meter"`
}

type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	FallMultiplier float64 `yaml:"fall_multiplier"`
	Density        float64 `yaml:"density"`
}

type GameConfig struct {
	DeathDelay   float64 `yaml:"death_delay"`
	CameraFollow float64 `yaml:"camera_follow"`
	Level        string  `yaml:"level"`
}

type AudioConfig struct {
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
	Mute        bool    `yaml:"mute"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}

// StepSeconds is the fixed frame time used for the physics step.
func (c Config) StepSeconds() float64 {
	if c.Window.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.Window.TPS)
}
