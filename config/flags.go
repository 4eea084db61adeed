package config

import (
	"flag"
	"fmt"
	"time"
)

// Flags registers -config and the override flags on fs. Call Resolve after
// fs.Parse.
type Flags struct {
	fs     *flag.FlagSet
	path   *string
	seed   *uint64
	period *time.Duration
	assets *string
	debug  *bool
	sound  *bool
	width  *int
	height *int
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:     fs,
		path:   fs.String("config", "", "YAML config file"),
		seed:   fs.Uint64("seed", 0, "Spawner seed, 0 picks one at random"),
		period: fs.Duration("spawn-period", 0, "Time between enemy spawns"),
		assets: fs.String("assets", "", "Asset directory"),
		debug:  fs.Bool("debug-ui", false, "Show the ImGui debug overlay"),
		sound:  fs.Bool("sound", false, "Play sound cues"),
		width:  fs.Int("width", 0, "Window width"),
		height: fs.Int("height", 0, "Window height"),
	}
}

// Resolve loads the -config file, or the defaults, and applies the flags
// the user set explicitly.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if *f.path != "" {
		loaded, err := Load(*f.path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Spawn.Seed = *f.seed
		case "spawn-period":
			cfg.Spawn.Period = *f.period
		case "assets":
			cfg.AssetDir = *f.assets
		case "debug-ui":
			cfg.DebugUI = *f.debug
		case "sound":
			cfg.Sound = *f.sound
		case "width":
			cfg.Window.Width = *f.width
		case "height":
			cfg.Window.Height = *f.height
		}
	})
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("command line: %w", err)
	}
	return cfg, nil
}
