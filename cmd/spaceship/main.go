package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/leterax/go-spaceship/internal/config"
	"github.com/leterax/go-spaceship/pkg/assets"
	"github.com/leterax/go-spaceship/pkg/render"
	"github.com/leterax/go-spaceship/pkg/scene"
)

var version = "dev"

var CLI struct {
	Version        bool   `help:"Print version information and exit." short:"v"`
	Debug          bool   `help:"Whether to enable debug logging."`
	Config         string `help:"Path to a YAML config file." type:"path" default:"config.yaml"`
	Model          string `help:"Override the glTF model path. Empty uses the config value."`
	CollisionDebug bool   `help:"Draw collision shapes as wireframes." name:"collision-debug"`
}

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("spaceship"),
		kong.Description("fly a spaceship around a small physics playground"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	if CLI.Version {
		fmt.Println(version)
		return
	}

	cfg, err := loadConfig(CLI.Config)
	if err != nil {
		log.Fatal().Err(err).Str("path", CLI.Config).Msg("failed to load config")
	}

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	} else if err != nil {
		log.Warn().Str("level", cfg.Logging.Level).Msg("unknown log level, using info")
	}
	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Model != "" {
		cfg.Assets.Model = CLI.Model
	}
	if CLI.CollisionDebug {
		cfg.Debug.Collision = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := scene.New(sceneOptions(cfg))

	loader := assets.NewLoader(cfg.Assets.Model, assets.DefaultClips)

	renderer, err := render.NewRenderer(render.Options{
		Width:          cfg.Window.Width,
		Height:         cfg.Window.Height,
		Title:          cfg.Window.Title,
		VSync:          cfg.Window.VSync,
		DebugCollision: cfg.Debug.Collision,
	}, s, loader)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize renderer")
	}

	loader.Start(ctx)

	log.Info().
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Str("model", cfg.Assets.Model).
		Msg("starting")

	renderer.Run(ctx)
}

// loadConfig reads path, falling back to the defaults when it does not exist
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", path).Msg("config file not found, using defaults")
		return config.Default(), nil
	}
	return cfg, err
}

func sceneOptions(cfg *config.Config) scene.Options {
	return scene.Options{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		FOV:          cfg.Camera.FOV,
		Near:         cfg.Camera.Near,
		Far:          cfg.Camera.Far,
		CameraOffset: mgl32.Vec3(cfg.Camera.Offset),
		CameraLookAt: mgl32.Vec3(cfg.Camera.LookAt),
		Gravity:      mgl32.Vec3(cfg.Physics.Gravity),
		TimeStep:     cfg.Physics.TimeStep,
		Accumulate:   cfg.Physics.Accumulate,
		MaxSubsteps:  cfg.Physics.MaxSubsteps,
	}
}
