package talkie

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a talkie program. It is read from a YAML
// file and then overridden by TALKIE_* environment variables.
type Config struct {
	Title          string        `yaml:"title"           env:"TALKIE_TITLE"`
	Width          int           `yaml:"width"           env:"TALKIE_WIDTH"`
	Height         int           `yaml:"height"          env:"TALKIE_HEIGHT"`
	TPS            int           `yaml:"tps"             env:"TALKIE_TPS"`
	Resizable      bool          `yaml:"resizable"       env:"TALKIE_RESIZABLE"`
	Character      string        `yaml:"character"       env:"TALKIE_CHARACTER"`
	Weather        string        `yaml:"weather"         env:"TALKIE_WEATHER"`
	Background     string        `yaml:"background"      env:"TALKIE_BACKGROUND"`
	BackgroundFade time.Duration `yaml:"background_fade" env:"TALKIE_BACKGROUND_FADE"`
	AssetsDir      string        `yaml:"assets_dir"      env:"TALKIE_ASSETS_DIR"`
	Script         string        `yaml:"script"          env:"TALKIE_SCRIPT"`
	ScreenshotDir  string        `yaml:"screenshot_dir"  env:"TALKIE_SCREENSHOT_DIR"`
	Debug          bool          `yaml:"debug"           env:"TALKIE_DEBUG"`
	ShowFPS        bool          `yaml:"show_fps"        env:"TALKIE_SHOW_FPS"`
}

// DefaultConfig returns the settings used when no file or variable
// overrides them.
func DefaultConfig() Config {
	return Config{
		Title:          "talkie",
		Width:          800,
		Height:         600,
		TPS:            60,
		Resizable:      true,
		Character:      DefaultCharacter,
		Weather:        "clear",
		Background:     "#87ceeb",
		BackgroundFade: 400 * time.Millisecond,
		AssetsDir:      "assets",
		ScreenshotDir:  "screenshots",
	}
}

// LoadConfig reads path on top of DefaultConfig and applies environment
// overrides. A missing file is not an error; an empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("talkie: read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("talkie: parse config %s: %w", path, err)
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("talkie: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("talkie: invalid window size %dx%d", c.Width, c.Height)
	}
	if _, err := ParseWeather(c.Weather); err != nil {
		return err
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// SceneOptions converts the config to options for NewScene. Loader, fonts
// and logging are left for the caller to fill in.
func (c Config) SceneOptions() (SceneOptions, error) {
	weather, err := ParseWeather(c.Weather)
	if err != nil {
		return SceneOptions{}, err
	}
	bg, err := ParseColor(c.Background)
	if err != nil {
		return SceneOptions{}, err
	}
	return SceneOptions{
		Width:          c.Width,
		Height:         c.Height,
		Character:      c.Character,
		Weather:        weather,
		Background:     &bg,
		BackgroundFade: c.BackgroundFade,
		ScreenshotDir:  c.ScreenshotDir,
		Debug:          c.Debug,
		ShowFPS:        c.ShowFPS,
	}, nil
}

// RunConfig returns the window settings for Run.
func (c Config) RunConfig() RunConfig {
	return RunConfig{
		Title:     c.Title,
		Width:     c.Width,
		Height:    c.Height,
		TPS:       c.TPS,
		Resizable: c.Resizable,
	}
}
