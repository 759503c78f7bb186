package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/internal/utils"
	"github.com/trackedspace/trackviz/pkg/file"
)

// SettingsWatcherService re-applies the view and gesture settings whenever
// the configuration file changes on disk, so thresholds and toggles can be
// tuned without restarting.
type SettingsWatcherService struct {
	configPath string

	fileClient file.FileOperations
	settings   *settings.Store
	logger     zerolog.Logger

	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewSettingsWatcherService creates a new SettingsWatcherService instance.
func NewSettingsWatcherService(configPath string, fileClient file.FileOperations,
	settingsStore *settings.Store, logger zerolog.Logger) *SettingsWatcherService {
	return &SettingsWatcherService{
		configPath: configPath,
		fileClient: fileClient,
		settings:   settingsStore,
		logger:     logger,
	}
}

// Start begins watching the config file's directory. Watching the directory
// rather than the file survives editors that replace the file on save.
func (w *SettingsWatcherService) Start() error {
	if w.running {
		w.logger.Warn().Msg("SettingsWatcherService is already running")
		return errors.New("settings watcher service is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to create fsnotify watcher")
		return err
	}
	if err := watcher.Add(filepath.Dir(w.configPath)); err != nil {
		watcher.Close()
		w.logger.Error().Err(err).Str("path", w.configPath).Msg("Failed to watch config directory")
		return err
	}
	w.watcher = watcher

	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.running = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.handleEvent(event)
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Error().Err(err).Msg("Config watcher error")
			case <-w.ctx.Done():
				w.logger.Info().Msg("SettingsWatcherService is stopping")
				return
			}
		}
	}()

	w.logger.Info().Str("config", w.configPath).Msg("SettingsWatcherService started")
	return nil
}

// Stop gracefully stops the watcher.
func (w *SettingsWatcherService) Stop() error {
	if !w.running {
		w.logger.Warn().Msg("SettingsWatcherService is not running")
		return errors.New("settings watcher service is not running")
	}

	w.cancel()
	if err := w.watcher.Close(); err != nil {
		w.logger.Error().Err(err).Msg("Failed to close fsnotify watcher")
	}
	w.wg.Wait()
	w.running = false

	w.logger.Info().Msg("SettingsWatcherService stopped")
	return nil
}

// handleEvent reloads settings when the config file itself was touched.
func (w *SettingsWatcherService) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != filepath.Base(w.configPath) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	config, err := utils.LoadConfig(w.configPath, w.fileClient)
	if err != nil {
		w.logger.Error().Err(err).Msg("Ignoring config change that failed to load")
		return
	}

	next := config.InitialSettings()
	w.settings.Update(func(s *settings.Settings) { *s = next })
	w.logger.Info().Msg("Settings re-applied from changed config file")
}
