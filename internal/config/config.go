package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for parameters the pipeline cannot run with.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	ImagesDir         string `yaml:"images_dir"`
	Background        string `yaml:"background"`
	Sprite            string `yaml:"sprite"`
	FramesDir         string `yaml:"frames_dir"`
	OutputPath        string `yaml:"output"`
	TotalFrames       int    `yaml:"total_frames"`
	YMovementPerFrame int    `yaml:"y_movement_per_frame"`
	DelayMilliseconds int    `yaml:"delay_ms"`
	Repeat            bool   `yaml:"repeat"`
	ShowStats         bool   `yaml:"show_stats"`
	BuildVersion      string `yaml:"-"`
}

// Default returns the parameters of the stock playground animation.
func Default() Config {
	return Config{
		ImagesDir:         "Image",
		Background:        "Playground.png",
		Sprite:            "Football.png",
		FramesDir:         "frames",
		OutputPath:        "output.gif",
		TotalFrames:       30,
		YMovementPerFrame: 10,
		DelayMilliseconds: 100,
		Repeat:            true,
	}
}

func (c Config) BackgroundPath() string {
	return filepath.Join(c.ImagesDir, c.Background)
}

func (c Config) SpritePath() string {
	return filepath.Join(c.ImagesDir, c.Sprite)
}

// Delay is the real-time pause between two generated frames.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMilliseconds) * time.Millisecond
}

// SequenceLength is the number of frames a run produces.
func (c Config) SequenceLength() int {
	if c.Repeat {
		return 2 * c.TotalFrames
	}
	return c.TotalFrames
}

func (c Config) Validate() error {
	if c.TotalFrames <= 0 {
		return fmt.Errorf("%w: total_frames must be positive, got %d", ErrInvalid, c.TotalFrames)
	}
	if c.DelayMilliseconds < 0 {
		return fmt.Errorf("%w: delay_ms must not be negative, got %d", ErrInvalid, c.DelayMilliseconds)
	}
	if c.Background == "" || c.Sprite == "" {
		return fmt.Errorf("%w: background and sprite file names are required", ErrInvalid)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalid)
	}
	if c.FramesDir != "" && isWithin(c.OutputPath, c.FramesDir) {
		return fmt.Errorf("%w: output %s must not be inside frames_dir %s", ErrInvalid, c.OutputPath, c.FramesDir)
	}
	return nil
}

// isWithin reports whether path resolves to dir or somewhere below it.
func isWithin(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Load reads a YAML file on top of Default, so a partial file only
// overrides the keys it names.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config as YAML.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
