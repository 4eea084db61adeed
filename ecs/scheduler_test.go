package ecs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plus3/wavetd/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Positions    *ecs.Components[Position]
	Velocities   *ecs.Components[Velocity]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for _, row := range ecs.Join(s.Positions, s.Velocities) {
		row.A.X += row.B.DX * float32(frame.DeltaTime)
		row.A.Y += row.B.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Healths      *ecs.Components[Health]
	ExecuteCount int
	TotalHealth  float64
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalHealth = 0
	for _, h := range s.Healths.Iter() {
		s.TotalHealth += float64(h.Current)
	}
}

type namedSystem struct{}

func (namedSystem) Name() string                  { return "custom-name" }
func (namedSystem) Execute(frame *ecs.UpdateFrame) {}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		s := newTestStores()
		scheduler := ecs.NewScheduler(s.world)

		var order []string
		scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, "first") }))
		scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, "second") }))
		scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, "third") }))

		require.NoError(t, scheduler.Once(1.0))
		require.NoError(t, scheduler.Once(1.0))

		assert.Equal(t, []string{"first", "second", "third", "first", "second", "third"}, order)
	})

	t.Run("custom state persistence", func(t *testing.T) {
		s := newTestStores()
		scheduler := ecs.NewScheduler(s.world)

		s.healths.Set(s.world.Spawn(), Health{Current: 50, Max: 100})
		s.healths.Set(s.world.Spawn(), Health{Current: 75, Max: 100})

		health := &HealthSystem{Healths: s.healths}
		scheduler.Register(health)

		require.NoError(t, scheduler.Once(1.0))
		assert.Equal(t, 125.0, health.TotalHealth)

		s.healths.Set(s.world.Spawn(), Health{Current: 25, Max: 100})

		require.NoError(t, scheduler.Once(1.0))
		assert.Equal(t, 150.0, health.TotalHealth)
		assert.Equal(t, 2, health.ExecuteCount)
	})

	t.Run("delta time", func(t *testing.T) {
		s := newTestStores()
		scheduler := ecs.NewScheduler(s.world)

		id := s.world.Spawn()
		s.positions.Set(id, Position{})
		s.velocities.Set(id, Velocity{DX: 10, DY: 20})

		scheduler.Register(&MovementSystem{Positions: s.positions, Velocities: s.velocities})
		require.NoError(t, scheduler.Once(0.5))

		assert.Equal(t, Position{X: 5, Y: 10}, *s.positions.Get(id))
	})

	t.Run("errors are joined and the frame still flushes", func(t *testing.T) {
		s := newTestStores()
		scheduler := ecs.NewScheduler(s.world)

		errA := errors.New("a")
		errB := errors.New("b")

		scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
			frame.Fail(errA)
			frame.Fail(nil)
			frame.Commands.Spawn(ecs.With(s.markers, Marker{}))
		}))
		scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
			frame.Fail(errB)
		}))

		err := scheduler.Once(0.1)
		require.Error(t, err)
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
		assert.Equal(t, 1, s.markers.Len())
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		s := newTestStores()
		scheduler := ecs.NewScheduler(s.world)

		movement := &MovementSystem{Positions: s.positions, Velocities: s.velocities}
		scheduler.Register(movement)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- scheduler.Run(ctx, 1*time.Millisecond)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.Greater(t, movement.ExecuteCount, 0)
	})

	t.Run("run stops on frame error", func(t *testing.T) {
		s := newTestStores()
		scheduler := ecs.NewScheduler(s.world)

		boom := errors.New("boom")
		scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) { frame.Fail(boom) }))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		assert.ErrorIs(t, scheduler.Run(ctx, time.Millisecond), boom)
	})
}

func TestSchedulerStats(t *testing.T) {
	s := newTestStores()
	scheduler := ecs.NewScheduler(s.world)

	scheduler.Register(&HealthSystem{Healths: s.healths})
	scheduler.Register(namedSystem{})
	scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) { time.Sleep(time.Millisecond) }))

	stats := scheduler.GetStats()
	assert.Equal(t, 3, stats.SystemCount)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration, "no executions yet")

	for i := 0; i < 3; i++ {
		require.NoError(t, scheduler.Once(0.016))
	}

	stats = scheduler.GetStats()
	assert.Equal(t, int64(3), stats.FrameCount)
	assert.Equal(t, int64(9), stats.TotalExecutions)
	assert.Equal(t, "HealthSystem", stats.Systems[0].Name)
	assert.Equal(t, "custom-name", stats.Systems[1].Name)
	assert.Equal(t, "SystemFunc", stats.Systems[2].Name)

	slow := stats.Systems[2]
	assert.Equal(t, int64(3), slow.ExecutionCount)
	assert.GreaterOrEqual(t, slow.MinDuration, time.Millisecond)
	assert.GreaterOrEqual(t, slow.MaxDuration, slow.MinDuration)
	assert.Equal(t, slow.TotalDuration/3, slow.AvgDuration)
}
