package deferred

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_ScheduleFires(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	done := make(chan struct{})
	s.Schedule("k1", 10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled task did not fire")
	}

	require.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_CancelPreventsFiring(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired atomic.Bool
	s.Schedule("k1", 30*time.Millisecond, func() { fired.Store(true) })

	assert.True(t, s.Cancel("k1"))
	assert.False(t, s.Cancel("k1"))

	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load())
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_RescheduleReplacesTask(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var first, second atomic.Bool
	s.Schedule("k1", 30*time.Millisecond, func() { first.Store(true) })
	s.Schedule("k1", 10*time.Millisecond, func() { second.Store(true) })

	assert.Equal(t, 1, s.Pending())

	time.Sleep(60 * time.Millisecond)
	assert.False(t, first.Load())
	assert.True(t, second.Load())
}

func TestScheduler_StopCancelsAll(t *testing.T) {
	s := NewScheduler()

	var fired atomic.Bool
	s.Schedule("k1", 30*time.Millisecond, func() { fired.Store(true) })
	s.Schedule("k2", 30*time.Millisecond, func() { fired.Store(true) })

	s.Stop()
	assert.Equal(t, 0, s.Pending())

	// После остановки планирование игнорируется
	s.Schedule("k3", time.Millisecond, func() { fired.Store(true) })
	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load())
}
