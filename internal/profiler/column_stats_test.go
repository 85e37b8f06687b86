package profiler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnStatsAccumulates(t *testing.T) {
	t.Parallel()

	col := newColumnStats("a")
	for _, v := range []string{"1", "2", ""} {
		col.update(v)
	}
	stat := col.finalize(3)

	require.Equal(t, "a", stat.Name)
	assert.Equal(t, NumberType, stat.Type)
	assert.Equal(t, 1, stat.EmptyCount)
	assert.InDelta(t, 33.33, stat.EmptyPct, 0.01)
	assert.Equal(t, 3, stat.UniqueCount)
	assert.Equal(t, []string{"1", "2"}, stat.Sample)
}

func TestColumnStatsSampleKeepsFirstFive(t *testing.T) {
	t.Parallel()

	col := newColumnStats("x")
	for i := 1; i <= 8; i++ {
		col.update(fmt.Sprintf("v%d", i))
	}
	stat := col.finalize(8)

	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5"}, stat.Sample)
	assert.Equal(t, 8, stat.UniqueCount)
}

func TestColumnStatsWhitespaceOnlyIsEmpty(t *testing.T) {
	t.Parallel()

	col := newColumnStats("x")
	col.update("   ")
	stat := col.finalize(1)

	assert.Equal(t, 1, stat.EmptyCount)
	assert.Equal(t, UnknownType, stat.Type)
	assert.Empty(t, stat.Sample)
	// The raw value still lands in the unique set.
	assert.Equal(t, 1, stat.UniqueCount)
}

func TestColumnStatsUniquenessIsRaw(t *testing.T) {
	t.Parallel()

	col := newColumnStats("x")
	col.update("x")
	col.update(" x")
	col.update("x")
	stat := col.finalize(3)

	assert.Equal(t, 2, stat.UniqueCount)
	assert.Equal(t, []string{"x", " x", "x"}, stat.Sample)
}

func TestColumnStatsZeroRows(t *testing.T) {
	t.Parallel()

	stat := newColumnStats("x").finalize(0)

	assert.Equal(t, UnknownType, stat.Type)
	assert.Zero(t, stat.EmptyPct)
	assert.Zero(t, stat.UniqueCount)
	assert.Empty(t, stat.Sample)
}
