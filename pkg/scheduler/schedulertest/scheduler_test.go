package schedulertest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logicjwell/Chinese-BukkitAPI/pkg/scheduler"
)

type plugin string

func (p plugin) Name() string { return string(p) }

func TestSequentialIDs(t *testing.T) {
	s := New(WithFirstID(7))

	a, err := s.Register(scheduler.Request{Submitter: plugin("p"), Run: func() {}, Mode: scheduler.ModeNow})
	require.NoError(t, err)
	b, err := s.Register(scheduler.Request{Submitter: plugin("p"), Run: func() {}, Mode: scheduler.ModeDelayedAsync})
	require.NoError(t, err)

	assert.Equal(t, 7, a.ID)
	assert.Equal(t, 8, b.ID)
	assert.False(t, b.Sync())
	assert.Len(t, s.Registrations(), 2)
}

func TestFailNext(t *testing.T) {
	s := New()
	boom := errors.New("boom")
	s.FailNext(boom)

	_, err := s.Register(scheduler.Request{Submitter: plugin("p"), Run: func() {}})
	assert.ErrorIs(t, err, boom)

	reg, err := s.Register(scheduler.Request{Submitter: plugin("p"), Run: func() {}})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.ID)
	assert.Len(t, s.Requests(), 2)
}

func TestRunAndCancel(t *testing.T) {
	s := New()
	ran := 0
	reg, err := s.Register(scheduler.Request{Submitter: plugin("p"), Run: func() { ran++ }})
	require.NoError(t, err)

	assert.True(t, s.Run(reg.ID))
	assert.Equal(t, 1, ran)

	s.Cancel(reg.ID)
	assert.False(t, s.Run(reg.ID))
	assert.False(t, s.Run(42))
	assert.Equal(t, []int{reg.ID}, s.Cancelled())
}
