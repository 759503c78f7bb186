package service_registry

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/trackedspace/trackviz/internal/gestures"
	"github.com/trackedspace/trackviz/internal/registry"
	"github.com/trackedspace/trackviz/internal/services"
	"github.com/trackedspace/trackviz/internal/settings"
	"github.com/trackedspace/trackviz/internal/store"
	"github.com/trackedspace/trackviz/internal/utils"
	"github.com/trackedspace/trackviz/pkg/file"
	"github.com/trackedspace/trackviz/pkg/openvr"
)

// ServiceRegistry manages the lifecycle of the visualizer's background
// services.
type ServiceRegistry struct {
	services    map[string]registry.Service
	serviceKeys []string // Maintains order of service registration

	system        openvr.System
	poseStore     *store.PoseStore
	settingsStore *settings.Store
	fileClient    file.FileOperations
	clock         clock.Clock
	workerPool    *utils.WorkerPool
	Logger        zerolog.Logger
}

// NewServiceRegistry initializes a new service registry with dependencies.
func NewServiceRegistry(system openvr.System, poseStore *store.PoseStore, settingsStore *settings.Store,
	fileClient file.FileOperations, clk clock.Clock, logger zerolog.Logger) *ServiceRegistry {
	return &ServiceRegistry{
		services:      make(map[string]registry.Service),
		system:        system,
		poseStore:     poseStore,
		settingsStore: settingsStore,
		fileClient:    fileClient,
		clock:         clk,
		Logger:        logger,
	}
}

// RegisterService adds a new service to the registry.
func (sr *ServiceRegistry) RegisterService(name string, svc registry.Service) {
	if _, exists := sr.services[name]; exists {
		sr.Logger.Warn().Msgf("Service %s is already registered", name)
		return
	}
	sr.services[name] = svc
	sr.serviceKeys = append(sr.serviceKeys, name)
	sr.Logger.Info().Msgf("Registered service: %s", name)
}

// StartServices initiates all registered services in order.
// If a service fails to start, it stops already started services.
func (sr *ServiceRegistry) StartServices() error {
	startedServices := []string{}

	for _, name := range sr.serviceKeys {
		svc := sr.services[name]
		sr.Logger.Info().Msgf("Starting service: %s", name)
		if err := svc.Start(); err != nil {
			sr.Logger.Error().Err(err).Msgf("Failed to start service: %s", name)

			sr.Logger.Warn().Msg("Stopping already started services due to startup failure...")
			for i := len(startedServices) - 1; i >= 0; i-- {
				_ = sr.services[startedServices[i]].Stop()
			}
			return err
		}
		startedServices = append(startedServices, name)
	}

	return nil
}

// StopServices stops all services in reverse order.
func (sr *ServiceRegistry) StopServices() error {
	var stopErrors []error
	for i := len(sr.serviceKeys) - 1; i >= 0; i-- {
		name := sr.serviceKeys[i]
		if err := sr.services[name].Stop(); err != nil {
			stopErrors = append(stopErrors, fmt.Errorf("failed to stop %s: %w", name, err))
		}
	}

	if sr.workerPool != nil {
		sr.workerPool.Shutdown()
		sr.workerPool = nil
	}

	if len(stopErrors) > 0 {
		for _, e := range stopErrors {
			sr.Logger.Error().Err(e).Msg("Service stop failure")
		}
		return errors.Join(stopErrors...)
	}
	return nil
}

// RegisterServices initializes and registers enabled services based on configuration.
func (sr *ServiceRegistry) RegisterServices(config *utils.Config, configPath string) error {
	universe, err := config.TrackingUniverse()
	if err != nil {
		return err
	}

	sr.workerPool = utils.NewWorkerPool(config.Gestures.Workers)
	gestureRegistry := gestures.NewDefaultRegistry(sr.workerPool, sr.Logger)

	// Ordered service definitions with inline constructors
	servicesInOrder := []struct {
		name        string
		enabled     bool
		constructor func() (registry.Service, error)
	}{
		{
			name:    "tracking",
			enabled: true,
			constructor: func() (registry.Service, error) {
				return services.NewTrackingService(
					universe,
					config.Runtime.PollInterval,
					sr.system,
					sr.poseStore,
					gestureRegistry,
					sr.settingsStore,
					sr.clock,
					sr.Logger,
				), nil
			},
		},
		{
			name:    "stats",
			enabled: config.Stats.Enabled,
			constructor: func() (registry.Service, error) {
				return services.NewStatsService(
					config.Stats.Interval,
					sr.poseStore,
					sr.clock,
					sr.Logger,
				), nil
			},
		},
		{
			name:    "settings_watcher",
			enabled: config.Watch.Enabled,
			constructor: func() (registry.Service, error) {
				return services.NewSettingsWatcherService(
					configPath,
					sr.fileClient,
					sr.settingsStore,
					sr.Logger,
				), nil
			},
		},
	}

	registeredServices := []string{}
	for _, svc := range servicesInOrder {
		if svc.enabled {
			serviceInstance, err := svc.constructor()
			if err != nil {
				sr.Logger.Error().Err(err).Msgf("Failed to create %s service", svc.name)
				return err
			}
			sr.RegisterService(svc.name, serviceInstance)
			registeredServices = append(registeredServices, svc.name)
		}
	}

	sr.Logger.Info().Msgf("Registered services in order: %v", registeredServices)
	return nil
}
