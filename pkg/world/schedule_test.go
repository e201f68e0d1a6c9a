package world

import (
	"testing"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/stretchr/testify/require"
)

func TestScheduleIdempotentPerPosition(t *testing.T) {
	s := newSchedule()
	pos := block.Pos{X: 1, Y: 2, Z: 3}
	s.Schedule(pos, 0, 5, 0)
	s.Schedule(pos, 0, 5, 0)
	require.Equal(t, 1, s.Len())
}

func TestScheduleOrdering(t *testing.T) {
	s := newSchedule()
	a := block.Pos{X: 1}
	b := block.Pos{X: 2}
	c := block.Pos{X: 3}
	d := block.Pos{X: 4}

	s.Schedule(a, 0, 10, 0) // fires at 10, priority 0, seq 0
	s.Schedule(b, 0, 5, 0)  // fires at 5, priority 0, seq 1
	s.Schedule(c, 0, 5, 5)  // fires at 5, priority 5, seq 2 (higher priority wins)
	s.Schedule(d, 0, 5, 5)  // same tick+priority as c, later seq

	pos, ok := s.PopAtOrBefore(20)
	require.True(t, ok)
	require.Equal(t, c, pos)

	pos, ok = s.PopAtOrBefore(20)
	require.True(t, ok)
	require.Equal(t, d, pos)

	pos, ok = s.PopAtOrBefore(20)
	require.True(t, ok)
	require.Equal(t, b, pos)

	pos, ok = s.PopAtOrBefore(20)
	require.True(t, ok)
	require.Equal(t, a, pos)

	_, ok = s.PopAtOrBefore(20)
	require.False(t, ok)
}

func TestPopAtOrBeforeRespectsFireTime(t *testing.T) {
	s := newSchedule()
	pos := block.Pos{X: 9}
	s.Schedule(pos, 0, 10, 0)

	_, ok := s.PopAtOrBefore(5)
	require.False(t, ok)

	got, ok := s.PopAtOrBefore(10)
	require.True(t, ok)
	require.Equal(t, pos, got)
}
