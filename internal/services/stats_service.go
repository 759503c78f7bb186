package services

import (
	"context"
	"errors"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/process"

	"github.com/trackedspace/trackviz/internal/models"
	"github.com/trackedspace/trackviz/internal/store"
)

// StatsService samples this process's CPU and memory usage for the debug
// overlay.
type StatsService struct {
	interval  time.Duration
	poseStore *store.PoseStore
	clock     clock.Clock
	logger    zerolog.Logger

	proc    *process.Process
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(interval time.Duration, poseStore *store.PoseStore, clk clock.Clock,
	logger zerolog.Logger) *StatsService {
	return &StatsService{
		interval:  interval,
		poseStore: poseStore,
		clock:     clk,
		logger:    logger,
	}
}

// Start launches the sampling loop.
func (s *StatsService) Start() error {
	if s.running {
		s.logger.Warn().Msg("StatsService is already running")
		return errors.New("stats service is already running")
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to open own process handle")
		return err
	}
	s.proc = proc

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.running = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := s.clock.Ticker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sample()
			case <-s.ctx.Done():
				s.logger.Info().Msg("StatsService is stopping")
				return
			}
		}
	}()

	s.logger.Info().Dur("interval", s.interval).Msg("StatsService started")
	return nil
}

// Stop gracefully stops the sampling loop.
func (s *StatsService) Stop() error {
	if !s.running {
		s.logger.Warn().Msg("StatsService is not running")
		return errors.New("stats service is not running")
	}

	s.cancel()
	s.wg.Wait()
	s.running = false

	s.logger.Info().Msg("StatsService stopped")
	return nil
}

// sample reads one stats snapshot into the store.
func (s *StatsService) sample() {
	stats := models.RuntimeStats{
		Goroutines: runtime.NumGoroutine(),
		SampledAt:  s.clock.Now(),
	}

	if cpuPct, err := s.proc.CPUPercent(); err == nil {
		stats.CPUPercent = cpuPct
	} else {
		s.logger.Debug().Err(err).Msg("Failed to read CPU usage")
	}

	if memInfo, err := s.proc.MemoryInfo(); err == nil && memInfo != nil {
		stats.MemoryBytes = memInfo.RSS
	} else if err != nil {
		s.logger.Debug().Err(err).Msg("Failed to read memory usage")
	}

	s.poseStore.SetStats(stats)
}
