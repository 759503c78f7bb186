package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Masterminds/semver/v3"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trackedspace/trackviz/internal/service_registry"
	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/internal/store"
	"github.com/trackedspace/trackviz/internal/ui"
	"github.com/trackedspace/trackviz/internal/utils"
	"github.com/trackedspace/trackviz/pkg/file"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	fileClient := file.NewFileService()

	// Bootstrap logger; replaced once the config says how to log.
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	config, err := utils.LoadConfig(*configPath, fileClient)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log = buildLogger(config)

	// Tag every line of this run with a session id.
	log = log.With().Str("session_id", uuid.New().String()).Logger()
	log.Info().Str("config", *configPath).Msg("trackviz starting")

	settingsStore := settings.NewStore(config.InitialSettings())
	poseStore := store.NewPoseStore()

	// Connect the runtime backend. A runtime that is not running is not
	// fatal: the window opens in error mode instead, like the original
	// shows an error dialog.
	var system openvr.System
	var initErr error
	switch config.Runtime.Backend {
	case "simulated":
		system = openvr.NewSimulated()
		log.Info().Msg("Using simulated VR runtime backend")
	default:
		client, err := openvr.NewClient(openvr.ClientConfig{
			LibraryPath: config.Runtime.LibraryPath,
			Application: openvr.ApplicationScene,
		})
		switch {
		case err == nil:
			system = client
			checkRuntimeVersion(client, config.Runtime.MinVersion, log)
		case errors.Is(err, openvr.ErrRuntimeNotRunning):
			initErr = err
			log.Warn().Err(err).Msg("VR runtime unavailable, opening in error mode")
		default:
			log.Fatal().Err(err).Msg("Failed to initialize VR runtime")
		}
	}

	// Close the window on SIGINT/SIGTERM as well as the close button.
	shutdown := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		close(shutdown)
	}()

	var serviceRegistry *service_registry.ServiceRegistry
	if system != nil {
		serviceRegistry = service_registry.NewServiceRegistry(
			system, poseStore, settingsStore, fileClient, clock.New(), log)
		if err := serviceRegistry.RegisterServices(config, *configPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to register services")
		}
		if err := serviceRegistry.StartServices(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start services")
		}
		log.Info().Msg("All services started successfully")
	}

	app, err := ui.New(ui.Options{
		Title:     config.UI.Title,
		Width:     config.UI.Width,
		Height:    config.UI.Height,
		Store:    poseStore,
		Settings: settingsStore,
		Logger:   log,
		PersistView: func(v settings.View) {
			if err := utils.SaveViewToggles(*configPath, fileClient, v); err != nil {
				log.Warn().Err(err).Msg("Failed to persist view toggles")
			}
		},
		InitError: initErr,
		Shutdown:  shutdown,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build UI")
	}

	// The window owns the main goroutine until it closes.
	if err := app.Run(); err != nil {
		log.Error().Err(err).Msg("Window loop exited with error")
	}

	if serviceRegistry != nil {
		if err := serviceRegistry.StopServices(); err != nil {
			log.Error().Err(err).Msg("Failed to stop services cleanly")
		}
	}
	if system != nil {
		if err := system.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close VR runtime")
		}
	}
	log.Info().Msg("trackviz stopped")
}

// buildLogger applies the configured level and output format.
func buildLogger(config *utils.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if config.Logging.Pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		log = zerolog.New(os.Stdout)
	}
	return log.Level(level).With().Timestamp().Logger()
}

// checkRuntimeVersion warns when the runtime is older than the oldest
// version the visualizer is known to work against.
func checkRuntimeVersion(client *openvr.Client, minVersion string, log zerolog.Logger) {
	reported := client.RuntimeVersion()
	if reported == "" || minVersion == "" {
		return
	}

	current, err := semver.NewVersion(reported)
	if err != nil {
		log.Debug().Str("version", reported).Msg("Runtime version is not semver, skipping check")
		return
	}
	oldest, err := semver.NewVersion(minVersion)
	if err != nil {
		log.Debug().Str("min_version", minVersion).Msg("Configured min_version is not semver, skipping check")
		return
	}

	if current.LessThan(oldest) {
		log.Warn().
			Str("runtime_version", reported).
			Str("min_version", minVersion).
			Msg("VR runtime is older than the supported minimum")
	} else {
		log.Info().Str("runtime_version", reported).Msg("VR runtime version OK")
	}
}
