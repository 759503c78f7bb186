package settings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_CurrentAndUpdate(t *testing.T) {
	store := NewStore(Settings{
		Thresholds:     Thresholds{Trigger: 0.30},
		MetersToPixels: 100,
	})

	assert.Equal(t, 0.30, store.Current().Thresholds.Trigger)

	store.Update(func(s *Settings) { s.View.Grid = true })

	current := store.Current()
	assert.True(t, current.View.Grid)
	assert.Equal(t, 100.0, current.MetersToPixels, "untouched fields survive an update")
}

func TestStore_ConcurrentToggles(t *testing.T) {
	store := NewStore(Settings{})

	// Each toggle flips Debug; an even count must land back at false.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update(func(s *Settings) { s.View.Debug = !s.View.Debug })
		}()
	}
	wg.Wait()

	assert.False(t, store.Current().View.Debug)
}
